package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DjordjeVuckovic/green-bench/internal/apperr"
	"github.com/DjordjeVuckovic/green-bench/internal/compare"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
)

func (c *Client) Optimize(ctx context.Context, strategy domain.Strategy, datasetSize int) (domain.OptimizationRecommendation, error) {
	if !strategy.Valid() {
		return domain.OptimizationRecommendation{}, apperr.NewValidation("unknown optimization strategy " + strconv.Quote(string(strategy)))
	}

	q := url.Values{}
	q.Set("strategy", string(strategy))
	if datasetSize > 0 {
		q.Set("dataset_size", strconv.Itoa(datasetSize))
	}
	body := optimizeRequestWire{Strategy: string(strategy), DatasetSize: max(datasetSize, 0)}

	var resp optimizeWire
	if err := c.do(ctx, http.MethodPost, "/optimize", q, body, &resp); err != nil {
		return domain.OptimizationRecommendation{}, err
	}
	if resp.BestAlgorithm == "" {
		return domain.OptimizationRecommendation{}, apperr.NewEmptyResult("optimization")
	}

	best, _ := c.catalog.Lookup(resp.BestAlgorithm)
	rec := domain.OptimizationRecommendation{
		Algorithm:             best.DisplayName(),
		CarbonSaved:           "N/A",
		PerformanceImpact:     "N/A",
		Description:           resp.Explanation,
		Strategy:              strategy,
		Score:                 resp.OptimizationScore,
		Alternatives:          toAlternatives(resp.Alternatives),
		CarbonSavedAnnuallyKg: resp.CarbonSavedAnnually,
		StrategyApplied:       resp.StrategyApplied,
		Source:                domain.SourceLive,
	}

	if m, ok := resp.PerformanceMetrics[resp.BestAlgorithm]; ok {
		chosen := domain.BenchmarkResult{Algorithm: rec.Algorithm, TimeSec: m.TimeSeconds, CO2Grams: m.CarbonGCO2}
		if imp, err := compare.ImpactOf(chosen, c.performanceResults(resp.PerformanceMetrics)); err == nil {
			rec.CarbonSaved = imp.CarbonSaved
			rec.PerformanceImpact = imp.PerformanceImpact
		}
	}
	return rec, nil
}

func (c *Client) RecommendForScenario(ctx context.Context, s domain.Scenario) (domain.ScenarioRecommendation, error) {
	q := url.Values{}
	q.Set("cpu_intensive", strconv.FormatBool(s.CPUIntensive))
	q.Set("memory_intensive", strconv.FormatBool(s.MemoryIntensive))
	q.Set("latency_sensitive", strconv.FormatBool(s.LatencySensitive))
	body := scenarioRequestWire{
		CPUIntensive:     s.CPUIntensive,
		MemoryIntensive:  s.MemoryIntensive,
		LatencySensitive: s.LatencySensitive,
	}

	var resp scenarioWire
	if err := c.do(ctx, http.MethodPost, "/optimize/recommend-for-scenario", q, body, &resp); err != nil {
		return domain.ScenarioRecommendation{}, err
	}
	return domain.ScenarioRecommendation{
		Scenario:      resp.Scenario,
		Input:         s,
		BestAlgorithm: resp.BestAlgorithm,
		Explanation:   resp.Explanation,
		Alternatives:  toAlternatives(resp.Alternatives),
		Source:        domain.SourceLive,
	}, nil
}

func (c *Client) OptimizeStatus(ctx context.Context) (domain.OptimizerStatus, error) {
	var resp optimizeStatusWire
	if err := c.do(ctx, http.MethodGet, "/optimize/status", nil, nil, &resp); err != nil {
		return domain.OptimizerStatus{}, err
	}

	strategies := make([]domain.Strategy, 0, len(resp.Strategies))
	for _, s := range resp.Strategies {
		strategies = append(strategies, domain.Strategy(s))
	}
	return domain.OptimizerStatus{
		Status:         resp.Status,
		ModelAvailable: resp.ModelAvailable,
		Strategies:     strategies,
		Source:         domain.SourceLive,
	}, nil
}

// Algorithms lists the algorithms the optimizer knows. Catalog entries win over
// the backend's labels, which report every algorithm as O(n log n).
func (c *Client) Algorithms(ctx context.Context) ([]domain.Algorithm, error) {
	var resp algorithmsWire
	if err := c.do(ctx, http.MethodGet, "/optimize/algorithms", nil, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Algorithms) == 0 {
		return nil, apperr.NewEmptyResult("algorithm list")
	}

	out := make([]domain.Algorithm, 0, len(resp.Algorithms))
	for _, w := range resp.Algorithms {
		a, known := c.catalog.Lookup(w.Name)
		if !known {
			a.Category = "Unknown"
			if w.TimeComplexity != "" {
				a.Complexity = w.TimeComplexity
			}
			a.SpaceComplexity = w.SpaceComplexity
		}
		out = append(out, a)
	}
	return out, nil
}

func toAlternatives(in []alternativeWire) []domain.Alternative {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Alternative, 0, len(in))
	for _, a := range in {
		out = append(out, domain.Alternative(a))
	}
	return out
}
