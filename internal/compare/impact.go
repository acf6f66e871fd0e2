package compare

import (
	"fmt"

	"github.com/DjordjeVuckovic/green-bench/internal/domain"
)

const notAvailable = "N/A"

// Impact describes how a chosen algorithm stands against the rest of a batch:
// carbon saved relative to the highest emitter and speed relative to the
// fastest one.
type Impact struct {
	CarbonSaved       string
	PerformanceImpact string
}

func ImpactOf(chosen domain.BenchmarkResult, results []domain.BenchmarkResult) (Impact, error) {
	worst, err := ReduceWorst(results, FieldCO2)
	if err != nil {
		return Impact{}, err
	}
	fastest := results[lowest(results, FieldTime)]

	imp := Impact{CarbonSaved: notAvailable, PerformanceImpact: notAvailable}
	if worst.CO2Grams > 0 {
		imp.CarbonSaved = FormatPercent(100 * (worst.CO2Grams - chosen.CO2Grams) / worst.CO2Grams)
	}
	if diff, ok := DifferencePercent(fastest.TimeSec, chosen.TimeSec); ok {
		imp.PerformanceImpact = FormatSignedPercent(-diff)
	}
	return imp, nil
}

func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func FormatSignedPercent(v float64) string {
	if v == 0 {
		return "+0.0%"
	}
	return fmt.Sprintf("%+.1f%%", v)
}

// Compare builds the side by side comparison of two results. Differences are
// relative to the first algorithm and omitted when its value is zero.
func Compare(a, b domain.BenchmarkResult, idA, idB string, source domain.Source) domain.Comparison {
	c := domain.Comparison{
		Algorithm1:    domain.ComparedAlgorithm{Name: idA, TimeSeconds: a.TimeSec, CarbonGCO2: a.CO2Grams},
		Algorithm2:    domain.ComparedAlgorithm{Name: idB, TimeSeconds: b.TimeSec, CarbonGCO2: b.CO2Grams},
		Fastest:       idB,
		MostEfficient: idB,
		Source:        source,
	}
	if a.TimeSec < b.TimeSec {
		c.Fastest = idA
	}
	if a.CO2Grams < b.CO2Grams {
		c.MostEfficient = idA
	}
	if pct, ok := DifferencePercent(a.TimeSec, b.TimeSec); ok {
		c.TimeDifferencePercent = &pct
	}
	if pct, ok := DifferencePercent(a.CO2Grams, b.CO2Grams); ok {
		c.CarbonDifferencePercent = &pct
	}
	return c
}
