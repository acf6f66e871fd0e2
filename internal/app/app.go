// Package app wires the dashboard from configuration. Both binaries build
// their dependencies through it.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/green-bench/internal/apiclient"
	"github.com/DjordjeVuckovic/green-bench/internal/catalog"
	"github.com/DjordjeVuckovic/green-bench/internal/dashboard"
	"github.com/DjordjeVuckovic/green-bench/internal/fallback"
	"github.com/DjordjeVuckovic/green-bench/internal/metrics"
	"github.com/DjordjeVuckovic/green-bench/internal/storage/factory"
	"github.com/DjordjeVuckovic/green-bench/pkg/server"
)

type App struct {
	Service *dashboard.Service
	Client  *apiclient.Client
	Metrics *metrics.Metrics
	Health  server.HealthChecker

	close func()
}

type Option func(o *options)

type options struct {
	metrics *metrics.Metrics
	history bool
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithoutHistory skips the run store. The CLI uses it for one-shot commands.
func WithoutHistory() Option {
	return func(o *options) {
		o.history = false
	}
}

func New(ctx context.Context, cfg *Config, opts ...Option) (*App, error) {
	o := options{history: true}
	for _, opt := range opts {
		opt(&o)
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		var err error
		cat, err = catalog.LoadFromFile(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		slog.Info("Loaded algorithm catalog", "path", cfg.CatalogPath, "algorithms", len(cat.Algorithms))
	}

	client, err := apiclient.New(cfg.BackendURL,
		apiclient.WithTimeout(cfg.BackendTimeout),
		apiclient.WithPathPrefix(cfg.BackendPrefix),
		apiclient.WithCatalog(cat),
	)
	if err != nil {
		return nil, fmt.Errorf("backend client: %w", err)
	}

	gen := fallback.NewRandom()
	if cfg.FallbackSeed != nil {
		gen = fallback.NewSeeded(*cfg.FallbackSeed)
	}
	var footprintGen fallback.FootprintGenerator = gen
	if cfg.HostSampling {
		footprintGen = fallback.Chain{fallback.NewHostSampler(fallback.DefaultCPUSampleInterval), gen}
	}

	a := &App{Client: client, Metrics: o.metrics, Health: server.NewOkHealthChecker(), close: func() {}}

	analyzerOpts := []dashboard.AnalyzerOption{
		dashboard.WithCatalog(cat),
		dashboard.WithBenchmarkGenerator(gen),
		dashboard.WithAnalyzerMetrics(o.metrics),
	}
	if o.history {
		store, err := factory.NewRunStore(ctx, *cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("run store: %w", err)
		}
		analyzerOpts = append(analyzerOpts, dashboard.WithRunStore(store))
		a.Health = store.Health
		a.close = store.Close
		slog.Info("Run history enabled", "storage", cfg.Storage.Type)
	}

	a.Service = &dashboard.Service{
		Analyzer: dashboard.NewAnalyzer(client, analyzerOpts...),
		Footprint: dashboard.NewFootprintPoller(client,
			dashboard.WithInterval(cfg.PollInterval),
			dashboard.WithFootprintGenerator(footprintGen),
			dashboard.WithPollerMetrics(o.metrics),
		),
		Optimizer: dashboard.NewOptimizer(client,
			dashboard.WithOptimizerCatalog(cat),
			dashboard.WithGenerators(gen, fallback.NewRecommender(gen)),
			dashboard.WithOptimizerMetrics(o.metrics),
		),
	}
	return a, nil
}

// Close releases the run store.
func (a *App) Close() {
	a.close()
}
