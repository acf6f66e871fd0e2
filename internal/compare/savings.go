package compare

import (
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/pkg/utils"
)

const (
	// A tree absorbs roughly 0.02 g of CO2 per second.
	treeGramsPerSecond = 0.02
	// Joules a ~10 W bulb uses per displayed minute.
	lightbulbJoules = 0.01
)

type Savings struct {
	Best             domain.BenchmarkResult `json:"best"`
	Worst            domain.BenchmarkResult `json:"worst"`
	EnergySavedJ     float64                `json:"energy_saved_j"`
	CO2SavedG        float64                `json:"co2_saved_g"`
	PercentageSaved  *float64               `json:"percentage_saved,omitempty"`
	TreeDays         float64                `json:"tree_days"`
	LightbulbMinutes float64                `json:"lightbulb_minutes"`
}

func EnergySaved(best, worst domain.BenchmarkResult) float64 {
	return worst.EnergyJoules - best.EnergyJoules
}

func CO2Saved(best, worst domain.BenchmarkResult) float64 {
	return worst.CO2Grams - best.CO2Grams
}

// PercentageSaved returns the share of worst's energy that best saves, rounded
// to one decimal. ok is false when worst used no energy.
func PercentageSaved(best, worst domain.BenchmarkResult) (pct float64, ok bool) {
	if worst.EnergyJoules == 0 {
		return 0, false
	}
	return utils.RoundDecimal(100*EnergySaved(best, worst)/worst.EnergyJoules, 1), true
}

func ComputeSavings(best, worst domain.BenchmarkResult) Savings {
	energy := EnergySaved(best, worst)
	co2 := CO2Saved(best, worst)

	s := Savings{
		Best:             best,
		Worst:            worst,
		EnergySavedJ:     energy,
		CO2SavedG:        co2,
		TreeDays:         co2 / treeGramsPerSecond,
		LightbulbMinutes: energy / lightbulbJoules,
	}
	if pct, ok := PercentageSaved(best, worst); ok {
		s.PercentageSaved = &pct
	}
	return s
}

// Summary is everything the comparison views need from one batch.
type Summary struct {
	BestByEnergy  domain.BenchmarkResult `json:"best_by_energy"`
	WorstByEnergy domain.BenchmarkResult `json:"worst_by_energy"`
	BestByTime    domain.BenchmarkResult `json:"best_by_time"`
	WorstByTime   domain.BenchmarkResult `json:"worst_by_time"`

	// Savings is nil when best and worst by energy are the same record or the
	// same algorithm; nothing is compared in that case.
	Savings *Savings `json:"savings,omitempty"`
}

func (s *Summary) SavingsSuppressed() bool {
	return s.Savings == nil
}

func Summarize(results []domain.BenchmarkResult) (*Summary, error) {
	if len(results) == 0 {
		return nil, ErrEmptyResults
	}
	bestE, worstE := lowest(results, FieldEnergy), highest(results, FieldEnergy)
	bestT, worstT := lowest(results, FieldTime), highest(results, FieldTime)

	s := &Summary{
		BestByEnergy:  results[bestE],
		WorstByEnergy: results[worstE],
		BestByTime:    results[bestT],
		WorstByTime:   results[worstT],
	}

	if bestE == worstE || results[bestE].Algorithm == results[worstE].Algorithm {
		return s, nil
	}

	savings := ComputeSavings(results[bestE], results[worstE])
	s.Savings = &savings
	return s, nil
}

// DifferencePercent is (b-a)/a*100 rounded to two decimals; ok is false when a
// is zero.
func DifferencePercent(a, b float64) (pct float64, ok bool) {
	if a == 0 {
		return 0, false
	}
	return utils.RoundDecimal((b-a)/a*100, 2), true
}
