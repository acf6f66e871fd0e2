package dashboard

import (
	"context"
	"sync"

	"github.com/DjordjeVuckovic/green-bench/internal/apperr"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
)

var errOffline = &apperr.NetworkError{Endpoint: "/api", Err: context.DeadlineExceeded}

// fakeBackend answers from its function fields; nil fields fail as if the
// backend were unreachable.
type fakeBackend struct {
	mu    sync.Mutex
	calls map[string]int

	status     func(ctx context.Context) (domain.BackendStatus, error)
	run        func(ctx context.Context, algorithms []string, size int) ([]domain.BenchmarkResult, error)
	compare    func(ctx context.Context, a, b string) (domain.Comparison, error)
	footprint  func(ctx context.Context) (domain.SystemFootprint, error)
	estimate   func(ctx context.Context, cpu, mem float64) (domain.FootprintEstimate, error)
	optimize   func(ctx context.Context, s domain.Strategy, size int) (domain.OptimizationRecommendation, error)
	scenario   func(ctx context.Context, s domain.Scenario) (domain.ScenarioRecommendation, error)
	optStatus  func(ctx context.Context) (domain.OptimizerStatus, error)
	algorithms func(ctx context.Context) ([]domain.Algorithm, error)
}

func (f *fakeBackend) count(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[op]++
}

func (f *fakeBackend) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func onlineStatus(context.Context) (domain.BackendStatus, error) {
	return domain.BackendStatus{Online: true, Status: "ready"}, nil
}

func (f *fakeBackend) BenchmarkStatus(ctx context.Context) (domain.BackendStatus, error) {
	f.count("status")
	if f.status == nil {
		return domain.BackendStatus{}, errOffline
	}
	return f.status(ctx)
}

func (f *fakeBackend) RunBenchmark(ctx context.Context, algorithms []string, size int) ([]domain.BenchmarkResult, error) {
	f.count("run")
	if f.run == nil {
		return nil, errOffline
	}
	return f.run(ctx, algorithms, size)
}

func (f *fakeBackend) CompareBenchmarks(ctx context.Context, a, b string) (domain.Comparison, error) {
	f.count("compare")
	if f.compare == nil {
		return domain.Comparison{}, errOffline
	}
	return f.compare(ctx, a, b)
}

func (f *fakeBackend) SystemFootprint(ctx context.Context) (domain.SystemFootprint, error) {
	f.count("footprint")
	if f.footprint == nil {
		return domain.SystemFootprint{}, errOffline
	}
	return f.footprint(ctx)
}

func (f *fakeBackend) EstimateFootprint(ctx context.Context, cpu, mem float64) (domain.FootprintEstimate, error) {
	f.count("estimate")
	if f.estimate == nil {
		return domain.FootprintEstimate{}, errOffline
	}
	return f.estimate(ctx, cpu, mem)
}

func (f *fakeBackend) Optimize(ctx context.Context, s domain.Strategy, size int) (domain.OptimizationRecommendation, error) {
	f.count("optimize")
	if f.optimize == nil {
		return domain.OptimizationRecommendation{}, errOffline
	}
	return f.optimize(ctx, s, size)
}

func (f *fakeBackend) RecommendForScenario(ctx context.Context, s domain.Scenario) (domain.ScenarioRecommendation, error) {
	f.count("scenario")
	if f.scenario == nil {
		return domain.ScenarioRecommendation{}, errOffline
	}
	return f.scenario(ctx, s)
}

func (f *fakeBackend) OptimizeStatus(ctx context.Context) (domain.OptimizerStatus, error) {
	f.count("optimize_status")
	if f.optStatus == nil {
		return domain.OptimizerStatus{}, errOffline
	}
	return f.optStatus(ctx)
}

func (f *fakeBackend) Algorithms(ctx context.Context) ([]domain.Algorithm, error) {
	f.count("algorithms")
	if f.algorithms == nil {
		return nil, errOffline
	}
	return f.algorithms(ctx)
}
