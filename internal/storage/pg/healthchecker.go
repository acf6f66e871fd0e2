package pg

import (
	"context"
	"log/slog"
)

type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{pool: pool}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.pool == nil {
		return false
	}
	if err := hc.pool.Ping(ctx); err != nil {
		slog.Warn("Run history database is unreachable", "error", err)
		return false
	}
	return true
}
