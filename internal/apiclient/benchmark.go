package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/green-bench/internal/apperr"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
)

func (c *Client) BenchmarkStatus(ctx context.Context) (domain.BackendStatus, error) {
	var resp benchmarkStatusWire
	if err := c.do(ctx, http.MethodGet, "/benchmark/status", nil, nil, &resp); err != nil {
		return domain.BackendStatus{Online: false}, err
	}
	return domain.BackendStatus{
		Online:              true,
		Status:              resp.Status,
		AvailableAlgorithms: resp.AvailableAlgorithms,
		Message:             resp.Message,
	}, nil
}

// RunBenchmark asks the backend to benchmark algorithms (ids) over a dataset
// of datasetSize elements. Results keep the order the backend reports, or the
// requested order when it reports none.
func (c *Client) RunBenchmark(ctx context.Context, algorithms []string, datasetSize int) ([]domain.BenchmarkResult, error) {
	q := url.Values{}
	if len(algorithms) > 0 {
		q.Set("algorithms", strings.Join(algorithms, ","))
	}
	q.Set("dataset_size", strconv.Itoa(datasetSize))

	var resp runBenchmarkWire
	if err := c.do(ctx, http.MethodPost, "/benchmark", q, nil, &resp); err != nil {
		return nil, err
	}

	order := resp.AlgorithmsBenchmarked
	if len(order) == 0 {
		order = algorithms
	}
	return c.toResults(order, resp.Results, "benchmark run")
}

func (c *Client) BenchmarkResults(ctx context.Context) ([]domain.BenchmarkResult, error) {
	var resp benchmarkResultsWire
	if err := c.do(ctx, http.MethodGet, "/benchmark/results", nil, nil, &resp); err != nil {
		return nil, err
	}
	return c.toResults(resp.Algorithms, resp.Results, "benchmark results")
}

func (c *Client) CompareBenchmarks(ctx context.Context, algorithm1, algorithm2 string) (domain.Comparison, error) {
	q := url.Values{}
	q.Set("algorithm_1", algorithm1)
	q.Set("algorithm_2", algorithm2)

	var resp compareWire
	if err := c.do(ctx, http.MethodPost, "/benchmark/compare", q, nil, &resp); err != nil {
		return domain.Comparison{}, err
	}

	a1, a2 := resp.Comparison.Algorithm1, resp.Comparison.Algorithm2
	return domain.Comparison{
		Algorithm1:              domain.ComparedAlgorithm(a1),
		Algorithm2:              domain.ComparedAlgorithm(a2),
		TimeDifferencePercent:   resp.Differences.TimeDifferencePercent,
		CarbonDifferencePercent: resp.Differences.CarbonDifferencePercent,
		Fastest:                 resp.Winners.Fastest,
		MostEfficient:           resp.Winners.MostEfficient,
		Source:                  domain.SourceLive,
	}, nil
}

// toResults flattens the backend's algorithm -> metrics map. Ids in order come
// first; ids only present in the map follow in lexical order.
func (c *Client) toResults(order []string, metrics map[string]metricsWire, what string) ([]domain.BenchmarkResult, error) {
	seen := make(map[string]bool, len(metrics))
	ids := make([]string, 0, len(metrics))
	for _, id := range order {
		if _, ok := metrics[id]; ok && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	var rest []string
	for id := range metrics {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	ids = append(ids, rest...)

	if len(ids) == 0 {
		return nil, apperr.NewEmptyResult(what)
	}

	results := make([]domain.BenchmarkResult, 0, len(ids))
	for _, id := range ids {
		m := metrics[id]
		a, _ := c.catalog.Lookup(id)
		results = append(results, domain.BenchmarkResult{
			Algorithm:    a.DisplayName(),
			Complexity:   a.Complexity,
			TimeSec:      nonNegative(m.Time),
			EnergyJoules: nonNegative(m.Energy),
			CO2Grams:     nonNegative(m.CarbonGCO2),
		})
	}
	return results, nil
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// performanceResults converts the optimizer's per-algorithm metrics so they can
// be reduced like benchmark results.
func (c *Client) performanceResults(metrics map[string]performanceWire) []domain.BenchmarkResult {
	wire := make(map[string]metricsWire, len(metrics))
	for id, m := range metrics {
		wire[id] = metricsWire{Time: m.TimeSeconds, CarbonGCO2: m.CarbonGCO2}
	}
	results, _ := c.toResults(nil, wire, "performance metrics")
	return results
}
