package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/apperr"
	"github.com/DjordjeVuckovic/green-bench/internal/compare"
)

const MaxSeriesRuns = 100

type AlgorithmSeries struct {
	Algorithm    string        `json:"algorithm"`
	TimeSec      compare.Stats `json:"time_sec"`
	EnergyJoules compare.Stats `json:"energy_joules"`
	CO2Grams     compare.Stats `json:"co2_g"`
}

// SeriesView aggregates repeated analyses of the same request. Latency is the
// wall time of each analysis in seconds, fallback delay included.
type SeriesView struct {
	Runs       []*AnalysisView   `json:"runs"`
	Algorithms []AlgorithmSeries `json:"algorithms"`
	Latency    compare.Stats     `json:"latency_sec"`
	LiveRuns   int               `json:"live_runs"`
	DemoRuns   int               `json:"demo_runs"`
}

// RunSeries runs the same analysis runs times in sequence and summarises the
// spread of each algorithm's measurements.
func (a *Analyzer) RunSeries(ctx context.Context, req AnalysisRequest, runs int) (*SeriesView, error) {
	if runs < 1 || runs > MaxSeriesRuns {
		return nil, apperr.NewValidation(fmt.Sprintf("runs must be between 1 and %d", MaxSeriesRuns))
	}

	v := &SeriesView{Runs: make([]*AnalysisView, 0, runs)}
	latency := make([]float64, 0, runs)

	for i := 0; i < runs; i++ {
		start := time.Now()
		run, err := a.Run(ctx, req)
		if err != nil {
			return nil, err
		}
		latency = append(latency, time.Since(start).Seconds())

		v.Runs = append(v.Runs, run)
		if run.Source.IsDemo() {
			v.DemoRuns++
		} else {
			v.LiveRuns++
		}
	}

	v.Latency = compare.ComputeStats(latency)
	v.Algorithms = seriesByAlgorithm(v.Runs)
	return v, nil
}

// seriesByAlgorithm keeps the order in which algorithms first appear.
func seriesByAlgorithm(runs []*AnalysisView) []AlgorithmSeries {
	type samples struct{ time, energy, co2 []float64 }

	var order []string
	byName := make(map[string]*samples)
	for _, run := range runs {
		for _, r := range run.Run.Results {
			s, ok := byName[r.Algorithm]
			if !ok {
				s = &samples{}
				byName[r.Algorithm] = s
				order = append(order, r.Algorithm)
			}
			s.time = append(s.time, r.TimeSec)
			s.energy = append(s.energy, r.EnergyJoules)
			s.co2 = append(s.co2, r.CO2Grams)
		}
	}

	out := make([]AlgorithmSeries, 0, len(order))
	for _, name := range order {
		s := byName[name]
		out = append(out, AlgorithmSeries{
			Algorithm:    name,
			TimeSec:      compare.ComputeStats(s.time),
			EnergyJoules: compare.ComputeStats(s.energy),
			CO2Grams:     compare.ComputeStats(s.co2),
		})
	}
	return out
}
