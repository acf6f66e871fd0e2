package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/green-bench/internal/apiclient"
	"github.com/DjordjeVuckovic/green-bench/internal/apperr"
	"github.com/DjordjeVuckovic/green-bench/internal/catalog"
	"github.com/DjordjeVuckovic/green-bench/internal/compare"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/internal/fallback"
	"github.com/DjordjeVuckovic/green-bench/internal/metrics"
	"github.com/DjordjeVuckovic/green-bench/pkg/utils"
)

type OptimizerOption func(o *Optimizer)

// Optimizer serves recommendations, comparisons, the algorithm list and
// footprint estimates with the same live then demo degradation as Analyzer.
type Optimizer struct {
	backend     OptimizerBackend
	bench       BenchmarkBackend
	footprint   FootprintBackend
	catalog     *catalog.Catalog
	generator   fallback.BenchmarkGenerator
	recommender fallback.RecommendationGenerator
	metrics     *metrics.Metrics
}

func NewOptimizer(backend Backend, opts ...OptimizerOption) *Optimizer {
	gen := fallback.NewRandom()
	o := &Optimizer{
		backend:     backend,
		bench:       backend,
		footprint:   backend,
		catalog:     catalog.Default(),
		generator:   gen,
		recommender: fallback.NewRecommender(gen),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func WithOptimizerCatalog(c *catalog.Catalog) OptimizerOption {
	return func(o *Optimizer) {
		o.catalog = c
	}
}

// WithGenerators replaces the synthetic benchmark source and the recommender
// built on it.
func WithGenerators(g fallback.BenchmarkGenerator, r fallback.RecommendationGenerator) OptimizerOption {
	return func(o *Optimizer) {
		o.generator = g
		o.recommender = r
	}
}

func WithOptimizerMetrics(m *metrics.Metrics) OptimizerOption {
	return func(o *Optimizer) {
		o.metrics = m
	}
}

// degrade reports whether err should be answered with demo data. Validation
// errors and caller cancellation are returned as they are.
func (o *Optimizer) degrade(ctx context.Context, op string, err error) (bool, error) {
	o.metrics.ObserveCall(op, err)
	if err == nil {
		return false, nil
	}
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if apperr.Classify(err) == apperr.KindValidation {
		return false, err
	}
	slog.Warn("Backend call failed, showing demo data", "operation", op, "error", err, "kind", apperr.Classify(err))
	return true, nil
}

func (o *Optimizer) Optimize(ctx context.Context, strategy domain.Strategy, datasetSize int) (View[domain.OptimizationRecommendation], error) {
	if strategy == "" {
		strategy = domain.StrategyBalanced
	}
	if !strategy.Valid() {
		return View[domain.OptimizationRecommendation]{}, apperr.NewValidation(
			fmt.Sprintf("strategy must be one of: %v", domain.Strategies))
	}
	if datasetSize < 0 || datasetSize > MaxDatasetSize {
		return View[domain.OptimizationRecommendation]{}, apperr.NewValidation(
			fmt.Sprintf("dataset_size must be between 1 and %d", MaxDatasetSize))
	}

	rec, err := o.backend.Optimize(ctx, strategy, datasetSize)
	demo, err := o.degrade(ctx, "optimize", err)
	if err != nil {
		return View[domain.OptimizationRecommendation]{}, err
	}
	if demo {
		if datasetSize == 0 {
			datasetSize = DefaultDatasetSize
		}
		rec, err = o.recommender.GenerateRecommendation(o.catalog.Algorithms, strategy, datasetSize)
		if err != nil {
			return View[domain.OptimizationRecommendation]{}, err
		}
		return observed(o, NewView(rec, domain.SourceDemo), "optimize"), nil
	}
	return observed(o, NewView(rec, domain.SourceLive), "optimize"), nil
}

func (o *Optimizer) Scenario(ctx context.Context, s domain.Scenario) (View[domain.ScenarioRecommendation], error) {
	rec, err := o.backend.RecommendForScenario(ctx, s)
	demo, err := o.degrade(ctx, "scenario", err)
	if err != nil {
		return View[domain.ScenarioRecommendation]{}, err
	}
	if demo {
		return observed(o, NewView(fallback.RecommendScenario(s), domain.SourceDemo), "scenario"), nil
	}
	return observed(o, NewView(rec, domain.SourceLive), "scenario"), nil
}

func (o *Optimizer) Status(ctx context.Context) (View[domain.OptimizerStatus], error) {
	st, err := o.backend.OptimizeStatus(ctx)
	demo, err := o.degrade(ctx, "optimize_status", err)
	if err != nil {
		return View[domain.OptimizerStatus]{}, err
	}
	if demo {
		return observed(o, NewView(fallback.OptimizerStatus(), domain.SourceDemo), "optimize_status"), nil
	}
	return observed(o, NewView(st, domain.SourceLive), "optimize_status"), nil
}

// Algorithms lists what can be benchmarked. In demo mode the catalog is the
// list.
func (o *Optimizer) Algorithms(ctx context.Context) (View[[]domain.Algorithm], error) {
	algos, err := o.backend.Algorithms(ctx)
	demo, err := o.degrade(ctx, "algorithms", err)
	if err != nil {
		return View[[]domain.Algorithm]{}, err
	}
	if demo {
		out := append([]domain.Algorithm(nil), o.catalog.Algorithms...)
		return observed(o, NewView(out, domain.SourceDemo), "algorithms"), nil
	}
	return observed(o, NewView(algos, domain.SourceLive), "algorithms"), nil
}

func (o *Optimizer) Compare(ctx context.Context, algorithm1, algorithm2 string, datasetSize int) (View[domain.Comparison], error) {
	if algorithm1 == "" || algorithm2 == "" {
		return View[domain.Comparison]{}, apperr.NewValidation("algorithm_1 and algorithm_2 are required")
	}
	if algorithm1 == algorithm2 {
		return View[domain.Comparison]{}, apperr.NewValidation("pick two different algorithms to compare")
	}

	cmp, err := o.bench.CompareBenchmarks(ctx, algorithm1, algorithm2)
	demo, err := o.degrade(ctx, "compare", err)
	if err != nil {
		return View[domain.Comparison]{}, err
	}
	if demo {
		if datasetSize <= 0 {
			datasetSize = DefaultDatasetSize
		}
		results := o.generator.GenerateBenchmark(o.catalog.Resolve([]string{algorithm1, algorithm2}), datasetSize)
		if len(results) != 2 {
			return View[domain.Comparison]{}, apperr.NewEmptyResult("comparison")
		}
		cmp = compare.Compare(results[0], results[1], algorithm1, algorithm2, domain.SourceDemo)
		return observed(o, NewView(cmp, domain.SourceDemo), "compare"), nil
	}
	return observed(o, NewView(cmp, domain.SourceLive), "compare"), nil
}

// Estimate prices a hypothetical load. The demo answer uses the backend's own
// power model, so it only differs from a live answer in its label.
func (o *Optimizer) Estimate(ctx context.Context, cpuPercent, memoryGB float64) (View[domain.FootprintEstimate], error) {
	if err := apiclient.ValidateEstimate(cpuPercent, memoryGB); err != nil {
		return View[domain.FootprintEstimate]{}, err
	}

	est, err := o.footprint.EstimateFootprint(ctx, cpuPercent, memoryGB)
	demo, err := o.degrade(ctx, "estimate", err)
	if err != nil {
		return View[domain.FootprintEstimate]{}, err
	}
	if demo {
		est = domain.EstimateFootprint(cpuPercent, memoryGB)
		est.PowerWatts = utils.RoundDecimal(est.PowerWatts, 2)
		est.CarbonKgPerHour = utils.RoundDecimal(est.CarbonKgPerHour, 4)
		est.EnergyKWh = utils.RoundDecimal(est.EnergyKWh, 4)
		est.Source = domain.SourceDemo
		return observed(o, NewView(est, domain.SourceDemo), "estimate"), nil
	}
	return observed(o, NewView(est, domain.SourceLive), "estimate"), nil
}

func observed[T any](o *Optimizer, v View[T], op string) View[T] {
	o.metrics.ObserveSource(op, v.Source)
	return v
}
