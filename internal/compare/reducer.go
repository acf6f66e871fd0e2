package compare

import (
	"fmt"

	"github.com/DjordjeVuckovic/green-bench/internal/apperr"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
)

type Field string

const (
	FieldTime   Field = "time_sec"
	FieldEnergy Field = "energy_joules"
	FieldCO2    Field = "co2_g"
)

// ErrEmptyResults is returned when a reduction is asked for over no records.
var ErrEmptyResults = apperr.NewEmptyResult("comparison")

func (f Field) validate() error {
	switch f {
	case FieldTime, FieldEnergy, FieldCO2:
		return nil
	default:
		return fmt.Errorf("unknown comparison field %q", string(f))
	}
}

// value reads f from r. f must have passed validate.
func (f Field) value(r domain.BenchmarkResult) float64 {
	switch f {
	case FieldTime:
		return r.TimeSec
	case FieldEnergy:
		return r.EnergyJoules
	default:
		return r.CO2Grams
	}
}

// ReduceBest returns the record with the lowest value for field.
// Ties keep the earlier record.
func ReduceBest(results []domain.BenchmarkResult, field Field) (domain.BenchmarkResult, error) {
	i, err := bestIndex(results, field)
	if err != nil {
		return domain.BenchmarkResult{}, err
	}
	return results[i], nil
}

// ReduceWorst returns the record with the highest value for field.
// Ties keep the earlier record.
func ReduceWorst(results []domain.BenchmarkResult, field Field) (domain.BenchmarkResult, error) {
	i, err := worstIndex(results, field)
	if err != nil {
		return domain.BenchmarkResult{}, err
	}
	return results[i], nil
}

func bestIndex(results []domain.BenchmarkResult, field Field) (int, error) {
	if err := checkReducible(results, field); err != nil {
		return 0, err
	}
	return lowest(results, field), nil
}

func worstIndex(results []domain.BenchmarkResult, field Field) (int, error) {
	if err := checkReducible(results, field); err != nil {
		return 0, err
	}
	return highest(results, field), nil
}

func checkReducible(results []domain.BenchmarkResult, field Field) error {
	if len(results) == 0 {
		return ErrEmptyResults
	}
	return field.validate()
}

// lowest and highest expect a non-empty slice and a valid field.
func lowest(results []domain.BenchmarkResult, field Field) int {
	return scan(results, field, func(candidate, current float64) bool { return candidate < current })
}

func highest(results []domain.BenchmarkResult, field Field) int {
	return scan(results, field, func(candidate, current float64) bool { return candidate > current })
}

func scan(results []domain.BenchmarkResult, field Field, better func(candidate, current float64) bool) int {
	idx, cur := 0, field.value(results[0])
	for i := 1; i < len(results); i++ {
		if v := field.value(results[i]); better(v, cur) {
			idx, cur = i, v
		}
	}
	return idx
}
