package dashboard

import (
	"testing"

	"github.com/DjordjeVuckovic/green-bench/internal/compare"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	live := Label(domain.SourceLive)
	assert.Equal(t, SourceView{Source: domain.SourceLive, Badge: BadgeLive}, live)

	demo := Label(domain.SourceDemo)
	assert.Equal(t, BadgeDemo, demo.Badge)
	assert.Equal(t, DemoBanner, demo.Banner)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "0.0123", FormatSeconds(0.012345))
	assert.Equal(t, "12.5%", FormatPercent(12.46))
	assert.Equal(t, "16.0 GB", FormatGB(15.98))
	assert.Equal(t, "0.0600 kWh", FormatKWh(0.06))
	assert.Equal(t, "31.2 g/h", FormatCarbonRate(0.0312))
}

func TestNewAnalysisView(t *testing.T) {
	run := domain.NewBenchmarkRun([]string{"bubble_sort", "quick_sort"}, 1000, []domain.BenchmarkResult{
		{Algorithm: "Bubble Sort", TimeSec: 0.025, EnergyJoules: 0.009, CO2Grams: 0.002},
		{Algorithm: "Quick Sort", TimeSec: 0.005, EnergyJoules: 0.001, CO2Grams: 0.0003},
	}, domain.SourceDemo)

	v, err := NewAnalysisView(run)
	require.NoError(t, err)

	assert.Equal(t, BadgeDemo, v.Badge)
	assert.Equal(t, "Quick Sort", v.BestByTime)
	require.NotNil(t, v.Savings)
	assert.Equal(t, "Quick Sort", v.Savings.BestAlgorithm)
	assert.Equal(t, "Bubble Sort", v.Savings.WorstAlgorithm)
	assert.Equal(t, "88.9%", v.Savings.PercentageSaved)
	assert.Equal(t, "0.001700g", v.Savings.CO2Saved)
	assert.Equal(t, "0.8", v.Savings.LightbulbMinutes)
}

func TestNewAnalysisView_Empty(t *testing.T) {
	_, err := NewAnalysisView(domain.BenchmarkRun{})
	assert.ErrorIs(t, err, compare.ErrEmptyResults)
}

func TestNewSavingsView_ZeroWorstEnergy(t *testing.T) {
	s := compare.ComputeSavings(domain.BenchmarkResult{Algorithm: "A"}, domain.BenchmarkResult{Algorithm: "B"})
	v := NewSavingsView(s)
	assert.Empty(t, v.PercentageSaved)
	assert.Equal(t, "0.00", v.TreeDays)
}
