package fallback

import "github.com/DjordjeVuckovic/green-bench/internal/domain"

var scenarioAlternatives = []domain.Alternative{
	{Algorithm: "quick_sort", Score: 0.87, Explanation: "Quick sort is slightly faster but uses more energy in worst-case scenarios."},
	{Algorithm: "heap_sort", Score: 0.84, Explanation: "Heap sort provides stable performance with moderate energy consumption."},
}

// RecommendScenario applies the benchmarking backend's rule table. Latency
// wins over memory, memory over cpu.
func RecommendScenario(s domain.Scenario) domain.ScenarioRecommendation {
	rec := domain.ScenarioRecommendation{
		Scenario:      "General Purpose",
		Input:         s,
		BestAlgorithm: "merge_sort",
		Explanation:   "Merge sort offers the best balance between execution speed and carbon efficiency for typical workloads.",
		Alternatives:  append([]domain.Alternative(nil), scenarioAlternatives...),
		Source:        domain.SourceDemo,
	}

	switch {
	case s.LatencySensitive:
		rec.Scenario = "Latency-Sensitive"
		rec.BestAlgorithm = "quick_sort"
		rec.Explanation = "Quick sort minimizes latency with average O(n log n) performance."
	case s.MemoryIntensive:
		rec.Scenario = "Memory-Constrained"
		rec.BestAlgorithm = "heap_sort"
		rec.Explanation = "Heap sort uses O(1) extra space, ideal for memory constraints."
	case s.CPUIntensive:
		rec.Scenario = "CPU-Intensive"
		rec.BestAlgorithm = "merge_sort"
		rec.Explanation = "Merge sort distributes CPU load evenly for parallel execution."
	}
	return rec
}

func OptimizerStatus() domain.OptimizerStatus {
	return domain.OptimizerStatus{
		Status:         "ready",
		ModelAvailable: false,
		Strategies:     append([]domain.Strategy(nil), domain.Strategies...),
		Source:         domain.SourceDemo,
	}
}
