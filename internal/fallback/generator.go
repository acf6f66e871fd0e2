// Package fallback synthesises plausible stand-in data with the same shape as
// the benchmarking backend's responses. Everything produced here is demo data
// and must be labelled as such by callers.
package fallback

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/pkg/utils"
)

type BenchmarkGenerator interface {
	GenerateBenchmark(algorithms []domain.Algorithm, datasetSize int) []domain.BenchmarkResult
}

type FootprintGenerator interface {
	GenerateFootprint(ctx context.Context) (domain.SystemFootprint, error)
}

const (
	jitterSpread    = 0.2
	sizeUnit        = 1000.0
	efficientTime   = 0.005
	efficientEnergy = 0.001
	efficientCO2    = 0.0003
	slowTime        = 0.025
	slowEnergy      = 0.008
	slowCO2         = 0.002
)

// Random is the default generator. It is safe for concurrent use.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewRandom() *Random {
	return &Random{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
	}
}

// NewSeeded returns a generator whose output depends only on seed.
func NewSeeded(seed uint64) *Random {
	return &Random{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: time.Now,
	}
}

func (g *Random) float() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

func (g *Random) jitter(v float64) float64 {
	return utils.Jitter(v, jitterSpread, g.float())
}

func (g *Random) between(lo, hi float64) float64 {
	return lo + g.float()*(hi-lo)
}

// GenerateBenchmark scales fixed base costs by datasetSize/1000, using the
// efficient constants for O(n log n) algorithms, and applies ±20% jitter.
func (g *Random) GenerateBenchmark(algorithms []domain.Algorithm, datasetSize int) []domain.BenchmarkResult {
	multiplier := float64(datasetSize) / sizeUnit
	results := make([]domain.BenchmarkResult, 0, len(algorithms))

	for _, a := range algorithms {
		t, e, c := slowTime, slowEnergy, slowCO2
		if a.Efficient() {
			t, e, c = efficientTime, efficientEnergy, efficientCO2
		}
		results = append(results, domain.BenchmarkResult{
			Algorithm:    a.DisplayName(),
			Complexity:   complexityLabel(a),
			TimeSec:      g.jitter(t * multiplier),
			EnergyJoules: g.jitter(e * multiplier),
			CO2Grams:     g.jitter(c * multiplier),
		})
	}
	return results
}

func (g *Random) GenerateFootprint(_ context.Context) (domain.SystemFootprint, error) {
	return domain.SystemFootprint{
		CPUPercent:      g.between(35, 55),
		MemoryUsedGB:    g.between(6, 8),
		MemoryPercent:   g.between(45, 60),
		PowerWatts:      g.between(85, 115),
		CarbonKgPerHour: g.between(0.04, 0.06),
		EnergyKWh:       g.between(0.09, 0.12),
		Timestamp:       g.now().UTC(),
	}, nil
}

func complexityLabel(a domain.Algorithm) string {
	if a.Complexity == "" {
		return "N/A"
	}
	return a.Complexity
}

// Chain tries each footprint generator in order and returns the first success.
type Chain []FootprintGenerator

func (c Chain) GenerateFootprint(ctx context.Context) (domain.SystemFootprint, error) {
	var errs []error
	for _, g := range c {
		fp, err := g.GenerateFootprint(ctx)
		if err == nil {
			return fp, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return domain.SystemFootprint{}, errors.New("no footprint generator configured")
	}
	return domain.SystemFootprint{}, errors.Join(errs...)
}
