package fallback

import (
	"sort"

	"github.com/DjordjeVuckovic/green-bench/internal/compare"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/pkg/utils"
)

type RecommendationGenerator interface {
	GenerateRecommendation(algorithms []domain.Algorithm, strategy domain.Strategy, datasetSize int) (domain.OptimizationRecommendation, error)
}

const (
	defaultDatasetSize = 1000
	maxAlternatives    = 2
	// kg CO2 per year attributed to each percentage point of carbon saved.
	annualKgPerPercent = 0.17
)

type weights struct {
	time, carbon float64
	applied      string
	description  string
}

var strategyWeights = map[domain.Strategy]weights{
	domain.StrategyCarbonFirst: {0.2, 0.8, "Prioritizing carbon efficiency", "Selected for the lowest carbon emissions across the benchmarked algorithms."},
	domain.StrategySpeedFirst:  {0.8, 0.2, "Prioritizing execution speed", "Selected for the fastest execution time for this dataset size."},
	domain.StrategyBalanced:    {0.5, 0.5, "Balancing speed and efficiency", "Selected based on your balanced preference for speed and energy efficiency."},
}

// Recommender scores synthetic benchmark results to pick an algorithm for a
// strategy.
type Recommender struct {
	bench BenchmarkGenerator
}

func NewRecommender(bench BenchmarkGenerator) *Recommender {
	return &Recommender{bench: bench}
}

type scored struct {
	result domain.BenchmarkResult
	score  float64
}

func (r *Recommender) GenerateRecommendation(algorithms []domain.Algorithm, strategy domain.Strategy, datasetSize int) (domain.OptimizationRecommendation, error) {
	if datasetSize <= 0 {
		datasetSize = defaultDatasetSize
	}
	w, ok := strategyWeights[strategy]
	if !ok {
		strategy = domain.StrategyBalanced
		w = strategyWeights[strategy]
	}

	results := r.bench.GenerateBenchmark(algorithms, datasetSize)
	ranked, err := rank(results, w)
	if err != nil {
		return domain.OptimizationRecommendation{}, err
	}

	best := ranked[0]
	imp, err := compare.ImpactOf(best.result, results)
	if err != nil {
		return domain.OptimizationRecommendation{}, err
	}

	rec := domain.OptimizationRecommendation{
		Algorithm:         best.result.Algorithm,
		CarbonSaved:       imp.CarbonSaved,
		PerformanceImpact: imp.PerformanceImpact,
		Description:       w.description,
		Strategy:          strategy,
		Score:             utils.RoundDecimal(best.score, 2),
		StrategyApplied:   w.applied,
		Source:            domain.SourceDemo,
	}
	if worst, err := compare.ReduceWorst(results, compare.FieldCO2); err == nil && worst.CO2Grams > 0 {
		pct := 100 * (worst.CO2Grams - best.result.CO2Grams) / worst.CO2Grams
		rec.CarbonSavedAnnuallyKg = utils.RoundDecimal(pct*annualKgPerPercent, 1)
	}

	for _, alt := range ranked[1:] {
		if len(rec.Alternatives) == maxAlternatives {
			break
		}
		rec.Alternatives = append(rec.Alternatives, domain.Alternative{
			Algorithm:   alt.result.Algorithm,
			Score:       utils.RoundDecimal(alt.score, 2),
			Explanation: "Scored lower under the " + string(strategy) + " strategy.",
		})
	}
	return rec, nil
}

// rank scores each result as 1 - weighted normalised cost, highest first.
// Equal scores keep input order.
func rank(results []domain.BenchmarkResult, w weights) ([]scored, error) {
	slowest, err := compare.ReduceWorst(results, compare.FieldTime)
	if err != nil {
		return nil, err
	}
	dirtiest, _ := compare.ReduceWorst(results, compare.FieldCO2)

	out := make([]scored, 0, len(results))
	for _, res := range results {
		cost := w.time*ratio(res.TimeSec, slowest.TimeSec) + w.carbon*ratio(res.CO2Grams, dirtiest.CO2Grams)
		out = append(out, scored{result: res, score: 1 - cost})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })
	return out, nil
}

func ratio(v, top float64) float64 {
	if top == 0 {
		return 0
	}
	return v / top
}
