// Package dashboard turns backend calls into display-ready views. Every view
// is tagged live or demo; when the benchmarking backend fails the view is
// filled from the fallback generators instead of surfacing the error.
package dashboard

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/domain"
)

type BenchmarkBackend interface {
	BenchmarkStatus(ctx context.Context) (domain.BackendStatus, error)
	RunBenchmark(ctx context.Context, algorithms []string, datasetSize int) ([]domain.BenchmarkResult, error)
	CompareBenchmarks(ctx context.Context, algorithm1, algorithm2 string) (domain.Comparison, error)
}

type FootprintBackend interface {
	SystemFootprint(ctx context.Context) (domain.SystemFootprint, error)
	EstimateFootprint(ctx context.Context, cpuPercent, memoryGB float64) (domain.FootprintEstimate, error)
}

type OptimizerBackend interface {
	Optimize(ctx context.Context, strategy domain.Strategy, datasetSize int) (domain.OptimizationRecommendation, error)
	RecommendForScenario(ctx context.Context, s domain.Scenario) (domain.ScenarioRecommendation, error)
	OptimizeStatus(ctx context.Context) (domain.OptimizerStatus, error)
	Algorithms(ctx context.Context) ([]domain.Algorithm, error)
}

// Backend is everything the dashboard asks of the benchmarking backend.
// *apiclient.Client implements it.
type Backend interface {
	BenchmarkBackend
	FootprintBackend
	OptimizerBackend
}

const (
	DefaultFailureDelay = 500 * time.Millisecond
	DefaultOfflineDelay = 1500 * time.Millisecond
	DefaultPollInterval = 30 * time.Second
	DefaultStatusTTL    = 30 * time.Second
	DefaultDatasetSize  = 5000
	MaxDatasetSize      = 1_000_000
)

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
