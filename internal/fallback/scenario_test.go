package fallback

import (
	"testing"

	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRecommendScenario(t *testing.T) {
	tests := []struct {
		name     string
		in       domain.Scenario
		scenario string
		best     string
	}{
		{"general purpose", domain.Scenario{}, "General Purpose", "merge_sort"},
		{"latency", domain.Scenario{LatencySensitive: true}, "Latency-Sensitive", "quick_sort"},
		{"memory", domain.Scenario{MemoryIntensive: true}, "Memory-Constrained", "heap_sort"},
		{"cpu", domain.Scenario{CPUIntensive: true}, "CPU-Intensive", "merge_sort"},
		{"latency wins over memory", domain.Scenario{LatencySensitive: true, MemoryIntensive: true}, "Latency-Sensitive", "quick_sort"},
		{"memory wins over cpu", domain.Scenario{CPUIntensive: true, MemoryIntensive: true}, "Memory-Constrained", "heap_sort"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := RecommendScenario(tt.in)
			assert.Equal(t, tt.scenario, rec.Scenario)
			assert.Equal(t, tt.best, rec.BestAlgorithm)
			assert.Equal(t, tt.in, rec.Input)
			assert.Equal(t, domain.SourceDemo, rec.Source)
			assert.NotEmpty(t, rec.Explanation)
		})
	}
}

func TestOptimizerStatus(t *testing.T) {
	s := OptimizerStatus()
	assert.Equal(t, "ready", s.Status)
	assert.False(t, s.ModelAvailable)
	assert.ElementsMatch(t, domain.Strategies, s.Strategies)
	assert.True(t, s.Source.IsDemo())
}
