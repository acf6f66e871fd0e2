package domain

import (
	"time"

	"github.com/google/uuid"
)

// Source tells callers whether a payload was measured by the benchmarking
// backend or synthesised locally.
type Source string

const (
	SourceLive Source = "live"
	SourceDemo Source = "demo"
)

func (s Source) IsDemo() bool {
	return s == SourceDemo
}

type BenchmarkResult struct {
	Algorithm    string  `json:"algorithm"`
	Complexity   string  `json:"complexity"`
	TimeSec      float64 `json:"time_sec"`
	EnergyJoules float64 `json:"energy_joules"`
	CO2Grams     float64 `json:"co2_g"`
}

// BenchmarkRun is one ordered batch of results produced by a single analysis.
type BenchmarkRun struct {
	ID          uuid.UUID         `json:"id"`
	Algorithms  []string          `json:"algorithms"`
	DatasetSize int               `json:"dataset_size"`
	Results     []BenchmarkResult `json:"results"`
	Source      Source            `json:"source"`
	CreatedAt   time.Time         `json:"created_at"`
}

func NewBenchmarkRun(algorithms []string, datasetSize int, results []BenchmarkResult, source Source) BenchmarkRun {
	algos := make([]string, len(algorithms))
	copy(algos, algorithms)
	res := make([]BenchmarkResult, len(results))
	copy(res, results)

	return BenchmarkRun{
		ID:          uuid.New(),
		Algorithms:  algos,
		DatasetSize: datasetSize,
		Results:     res,
		Source:      source,
		CreatedAt:   time.Now().UTC(),
	}
}

type BackendStatus struct {
	Online              bool     `json:"online"`
	Status              string   `json:"status"`
	AvailableAlgorithms []string `json:"available_algorithms,omitempty"`
	Message             string   `json:"message,omitempty"`
}

type Comparison struct {
	Algorithm1              ComparedAlgorithm `json:"algorithm_1"`
	Algorithm2              ComparedAlgorithm `json:"algorithm_2"`
	TimeDifferencePercent   *float64          `json:"time_difference_percent,omitempty"`
	CarbonDifferencePercent *float64          `json:"carbon_difference_percent,omitempty"`
	Fastest                 string            `json:"fastest"`
	MostEfficient           string            `json:"most_efficient"`
	Source                  Source            `json:"source"`
}

type ComparedAlgorithm struct {
	Name        string  `json:"name"`
	TimeSeconds float64 `json:"time_seconds"`
	CarbonGCO2  float64 `json:"carbon_gco2"`
}
