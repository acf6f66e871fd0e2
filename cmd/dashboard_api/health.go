package main

import (
	"context"

	pkgserver "github.com/DjordjeVuckovic/green-bench/pkg/server"
)

// healthProxy lets /health be registered before the run store exists.
type healthProxy struct {
	target pkgserver.HealthChecker
}

func (h *healthProxy) Healthy(ctx context.Context) bool {
	if h.target == nil {
		return false
	}
	return h.target.Healthy(ctx)
}
