package compare

import (
	"math"
	"slices"
)

// Stats summarises repeated measurements of one quantity.
type Stats struct {
	Min         float64         `json:"min"`
	Max         float64         `json:"max"`
	Mean        float64         `json:"mean"`
	Median      float64         `json:"median"`
	Stddev      float64         `json:"stddev"`
	Percentiles map[int]float64 `json:"percentiles"`
	Samples     int             `json:"samples"`
}

var defaultPercentiles = []int{50, 75, 90, 95, 99}

// ComputeStats uses the sample standard deviation and linear interpolation
// between closest ranks for percentiles.
func ComputeStats(samples []float64) Stats {
	if len(samples) == 0 {
		return Stats{Percentiles: make(map[int]float64)}
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	s := Stats{
		Min:         sorted[0],
		Max:         sorted[len(sorted)-1],
		Median:      percentile(sorted, 50),
		Percentiles: make(map[int]float64, len(defaultPercentiles)),
		Samples:     len(sorted),
	}

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	s.Mean = sum / float64(len(sorted))

	if len(sorted) > 1 {
		var sumSquares float64
		for _, v := range sorted {
			diff := v - s.Mean
			sumSquares += diff * diff
		}
		s.Stddev = math.Sqrt(sumSquares / float64(len(sorted)-1))
	}

	for _, p := range defaultPercentiles {
		s.Percentiles[p] = percentile(sorted, p)
	}
	return s
}

func percentile(sorted []float64, p int) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := float64(p) / 100.0 * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s Stats) P95() float64 { return s.Percentiles[95] }

func (s Stats) IsZero() bool {
	return s.Samples == 0
}
