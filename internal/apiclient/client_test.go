package apiclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/apperr"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

func requestBody(t *testing.T, r *http.Request) string {
	t.Helper()
	b, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	return string(b)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("localhost:8000/api")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.Classify(err))
}

func TestNew_Defaults(t *testing.T) {
	c, err := New("http://localhost:8000")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, c.Timeout())
	assert.Equal(t, "http://localhost:8000/api", c.BaseURL())

	c, err = New("http://localhost:8000", WithPathPrefix(""), WithTimeout(0))
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, c.Timeout())
	assert.Equal(t, "http://localhost:8000", c.BaseURL())
}

func TestRunBenchmark(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/benchmark", r.URL.Path)
		assert.Equal(t, "bubble_sort,quick_sort", r.URL.Query().Get("algorithms"))
		assert.Equal(t, "5000", r.URL.Query().Get("dataset_size"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		writeJSON(w, http.StatusOK, `{
			"algorithms_benchmarked": ["bubble_sort", "quick_sort"],
			"dataset_size": 5000,
			"results": {
				"quick_sort": {"time": 0.0105, "memory": 192, "energy": 0.0015, "carbon_gco2": 0.0071},
				"bubble_sort": {"time": 0.0342, "memory": 128, "energy": 0.0012, "carbon_gco2": 0.0056}
			}
		}`)
	})

	results, err := c.RunBenchmark(context.Background(), []string{"bubble_sort", "quick_sort"}, 5000)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, domain.BenchmarkResult{
		Algorithm:    "Bubble Sort",
		Complexity:   "O(n²)",
		TimeSec:      0.0342,
		EnergyJoules: 0.0012,
		CO2Grams:     0.0056,
	}, results[0])
	assert.Equal(t, "Quick Sort", results[1].Algorithm)
	assert.Equal(t, domain.ComplexityNLogN, results[1].Complexity)
}

func TestRunBenchmark_EmptyResults(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"algorithms_benchmarked": [], "results": {}}`)
	})

	_, err := c.RunBenchmark(context.Background(), nil, 1000)
	require.Error(t, err)
	assert.Equal(t, apperr.KindEmpty, apperr.Classify(err))
}

func TestBenchmarkResults_OrdersUnlistedIDs(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/benchmark/results", r.URL.Path)
		writeJSON(w, http.StatusOK, `{
			"results": {
				"merge_sort": {"time": 0.0098, "energy": 0.0018, "carbon_gco2": 0.0085},
				"heap_sort": {"time": 0.0112, "energy": 0.0014, "carbon_gco2": 0.0066}
			}
		}`)
	})

	results, err := c.BenchmarkResults(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Heap Sort", results[0].Algorithm)
	assert.Equal(t, "Merge Sort", results[1].Algorithm)
}

func TestDo_StatusErrorUnwrapsDetail(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"detail": "Algorithm 'bogo_sort' not found in results"}`)
	})

	_, err := c.RunBenchmark(context.Background(), []string{"bogo_sort"}, 1000)
	require.Error(t, err)

	var he *apperr.HTTPStatusError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadRequest, he.StatusCode)
	assert.Equal(t, "Algorithm 'bogo_sort' not found in results", he.Message)
	assert.Equal(t, "/api/benchmark", he.Endpoint)
}

func TestDo_ErrorFieldOnSuccessStatus(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"error": "psutil unavailable", "message": "Failed to calculate system footprint"}`)
	})

	_, err := c.SystemFootprint(context.Background())
	require.Error(t, err)

	var he *apperr.HTTPStatusError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusOK, he.StatusCode)
	assert.Equal(t, "psutil unavailable", he.Message)
}

func TestDo_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	start := time.Now()
	_, err = c.SystemFootprint(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)

	var te *apperr.TimeoutError
	assert.True(t, errors.As(err, &te))
	assert.True(t, apperr.Recoverable(err))
}

func TestDo_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url)
	require.NoError(t, err)

	_, err = c.BenchmarkStatus(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNetwork, apperr.Classify(err))
}

func TestDo_CallerCancellation(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.SystemFootprint(ctx)
	require.Error(t, err)
	assert.Equal(t, apperr.KindCanceled, apperr.Classify(err))
}

func TestSystemFootprint(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/system-footprint", r.URL.Path)
		writeJSON(w, http.StatusOK, `{
			"cpu_percent": 35.5, "memory_used_gb": 6.2, "memory_percent": 15.5,
			"power_watts": 110.25, "carbon_kg_per_hour": 0.0523, "energy_kwh": 0.1103,
			"timestamp": "2026-02-02T14:30:00.123456Z"
		}`)
	})

	fp, err := c.SystemFootprint(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 35.5, fp.CPUPercent)
	assert.Equal(t, 6.2, fp.MemoryUsedGB)
	assert.Equal(t, 0.0523, fp.CarbonKgPerHour)
	assert.Equal(t, 2026, fp.Timestamp.Year())
}

func TestEstimateFootprint(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/system-footprint/estimate", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("cpu_percent"))
		assert.Equal(t, "8", r.URL.Query().Get("memory_gb"))
		assert.JSONEq(t, `{"cpu_percent": 50, "memory_gb": 8}`, requestBody(t, r))
		writeJSON(w, http.StatusOK, `{
			"input": {"cpu_percent": 50, "memory_gb": 8},
			"output": {"power_watts": 55.7, "carbon_kg_per_hour": 0.0265, "energy_kwh": 0.0557}
		}`)
	})

	est, err := c.EstimateFootprint(context.Background(), 50, 8)
	require.NoError(t, err)
	assert.Equal(t, 55.7, est.PowerWatts)
	assert.Equal(t, domain.SourceLive, est.Source)
}

func TestEstimateFootprint_ValidatesBeforeCalling(t *testing.T) {
	called := false
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.EstimateFootprint(context.Background(), 120, 4)
	assert.Equal(t, apperr.KindValidation, apperr.Classify(err))
	_, err = c.EstimateFootprint(context.Background(), 20, -1)
	assert.Equal(t, apperr.KindValidation, apperr.Classify(err))
	assert.False(t, called)
}

func TestCompareBenchmarks(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/benchmark/compare", r.URL.Path)
		assert.Equal(t, "merge_sort", r.URL.Query().Get("algorithm_1"))
		assert.Equal(t, "quick_sort", r.URL.Query().Get("algorithm_2"))
		writeJSON(w, http.StatusOK, `{
			"comparison": {
				"algorithm_1": {"name": "merge_sort", "time_seconds": 0.0098, "carbon_gco2": 0.0085},
				"algorithm_2": {"name": "quick_sort", "time_seconds": 0.0105, "carbon_gco2": 0.0071}
			},
			"differences": {"time_difference_percent": 7.14, "carbon_difference_percent": -16.47},
			"winners": {"fastest": "merge_sort", "most_efficient": "quick_sort"}
		}`)
	})

	cmp, err := c.CompareBenchmarks(context.Background(), "merge_sort", "quick_sort")
	require.NoError(t, err)
	assert.Equal(t, "merge_sort", cmp.Fastest)
	assert.Equal(t, "quick_sort", cmp.MostEfficient)
	require.NotNil(t, cmp.TimeDifferencePercent)
	assert.Equal(t, 7.14, *cmp.TimeDifferencePercent)
	assert.Equal(t, 0.0071, cmp.Algorithm2.CarbonGCO2)
}

func TestOptimize(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/optimize", r.URL.Path)
		assert.Equal(t, "speed_first", r.URL.Query().Get("strategy"))
		assert.Empty(t, r.URL.Query().Get("dataset_size"))
		assert.JSONEq(t, `{"strategy": "speed_first"}`, requestBody(t, r))
		writeJSON(w, http.StatusOK, `{
			"strategy": "speed_first",
			"best_algorithm": "quick_sort",
			"optimization_score": 0.89,
			"explanation": "Quick sort provides the fastest execution time for most workloads.",
			"alternatives": [{"algorithm": "heap_sort", "score": 0.84, "explanation": "stable"}],
			"carbon_saved_annually": 2.4,
			"performance_metrics": {
				"merge_sort": {"time_seconds": 0.0098, "carbon_gco2": 0.0085},
				"quick_sort": {"time_seconds": 0.0105, "carbon_gco2": 0.0071}
			},
			"strategy_applied": "Prioritizing execution speed"
		}`)
	})

	rec, err := c.Optimize(context.Background(), domain.StrategySpeedFirst, 0)
	require.NoError(t, err)
	assert.Equal(t, "Quick Sort", rec.Algorithm)
	assert.Equal(t, "16.5%", rec.CarbonSaved)
	assert.Equal(t, "-7.1%", rec.PerformanceImpact)
	assert.Equal(t, 0.89, rec.Score)
	assert.Equal(t, 2.4, rec.CarbonSavedAnnuallyKg)
	assert.Equal(t, "Prioritizing execution speed", rec.StrategyApplied)
	require.Len(t, rec.Alternatives, 1)
	assert.Equal(t, domain.SourceLive, rec.Source)
}

func TestOptimize_RejectsUnknownStrategy(t *testing.T) {
	c, err := New("http://localhost:8000")
	require.NoError(t, err)

	_, err = c.Optimize(context.Background(), "greenest", 1000)
	assert.Equal(t, apperr.KindValidation, apperr.Classify(err))
}

func TestRecommendForScenario(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/optimize/recommend-for-scenario", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("memory_intensive"))
		assert.JSONEq(t, `{"cpu_intensive": false, "memory_intensive": true, "latency_sensitive": false}`, requestBody(t, r))
		writeJSON(w, http.StatusOK, `{
			"scenario": "Memory-Constrained",
			"best_algorithm": "heap_sort",
			"explanation": "Heap sort uses O(1) extra space, ideal for memory constraints."
		}`)
	})

	rec, err := c.RecommendForScenario(context.Background(), domain.Scenario{MemoryIntensive: true})
	require.NoError(t, err)
	assert.Equal(t, "Memory-Constrained", rec.Scenario)
	assert.Equal(t, "heap_sort", rec.BestAlgorithm)
	assert.True(t, rec.Input.MemoryIntensive)
}

func TestAlgorithms_PrefersCatalogLabels(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"algorithms": [
			{"name": "bubble_sort", "time_complexity": "O(n log n)", "space_complexity": "O(1)"},
			{"name": "tim_sort", "time_complexity": "O(n log n)", "space_complexity": "O(n)"}
		], "count": 2}`)
	})

	algos, err := c.Algorithms(context.Background())
	require.NoError(t, err)
	require.Len(t, algos, 2)
	assert.Equal(t, "Bubble Sort", algos[0].Name)
	assert.Equal(t, "O(n²)", algos[0].Complexity)
	assert.Equal(t, "tim_sort", algos[1].Name)
	assert.Equal(t, "O(n log n)", algos[1].Complexity)
	assert.Equal(t, "Unknown", algos[1].Category)
}

func TestOptimizeStatus_WithoutPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/optimize/status", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"status": "ready", "model_available": true, "strategies": ["carbon_first", "balanced"]}`)
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, WithPathPrefix("/"))
	require.NoError(t, err)

	st, err := c.OptimizeStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, st.ModelAvailable)
	assert.Equal(t, []domain.Strategy{domain.StrategyCarbonFirst, domain.StrategyBalanced}, st.Strategies)
}
