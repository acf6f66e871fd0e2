// Package main Green Bench Dashboard API
// @title Green Bench Dashboard API
// @version 1.0
// @description Carbon footprint of algorithms: benchmarks, live system footprint and optimization advice, with demo fallback when the benchmarking backend is down
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/green-bench/docs"
	"github.com/DjordjeVuckovic/green-bench/internal/api/router"
	"github.com/DjordjeVuckovic/green-bench/internal/api/server"
	"github.com/DjordjeVuckovic/green-bench/internal/app"
	"github.com/DjordjeVuckovic/green-bench/internal/metrics"
	"github.com/DjordjeVuckovic/green-bench/pkg/logger"
	"github.com/labstack/echo/v4"
)

//go:generate swag init -d ../.. -g cmd/dashboard_api/main.go -o ../../docs --parseInternal

const envPath = "cmd/dashboard_api/.env"

func main() {
	logger.Setup(os.Getenv("LOG_LEVEL"))

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appCfg, err := app.LoadConfig(envPath)
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	m := metrics.New()

	healthy := &healthProxy{}
	s := server.New(sCfg, healthy).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupMetrics(m, "/metrics").
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Green Bench API is running")
	})

	a, err := app.New(s.Context(), appCfg, app.WithMetrics(m))
	if err != nil {
		slog.Error("Failed to build dashboard", "error", err)
		os.Exit(1)
	}
	healthy.target = a.Health

	slog.Info("Benchmarking backend", "url", a.Client.BaseURL(), "timeout", a.Client.Timeout())

	router.NewDashboardRouter(s.Echo, a.Service).Bind()

	pollerDone := make(chan struct{})
	go func() {
		defer close(pollerDone)
		if err := a.Service.Footprint.Run(s.Context()); err != nil {
			slog.Error("Footprint poller exited", "error", err)
		}
	}()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	<-pollerDone
	a.Close()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
