package dashboard

import (
	"fmt"

	"github.com/DjordjeVuckovic/green-bench/internal/compare"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
)

const (
	BadgeLive      = "Live Data"
	BadgeDemo      = "Demo Mode"
	BadgeConnected = "Backend Connected"
	DemoBanner     = "Backend unavailable - showing demo data"
)

// SourceView labels a payload for display.
type SourceView struct {
	Source domain.Source `json:"source"`
	Badge  string        `json:"badge"`
	Banner string        `json:"banner,omitempty"`
}

func Label(source domain.Source) SourceView {
	if source.IsDemo() {
		return SourceView{Source: domain.SourceDemo, Badge: BadgeDemo, Banner: DemoBanner}
	}
	return SourceView{Source: domain.SourceLive, Badge: BadgeLive}
}

// View wraps any payload with its source label.
type View[T any] struct {
	Data T `json:"data"`
	SourceView
}

func NewView[T any](data T, source domain.Source) View[T] {
	return View[T]{Data: data, SourceView: Label(source)}
}

type ResultRow struct {
	Algorithm  string `json:"algorithm"`
	Complexity string `json:"complexity"`
	TimeSec    string `json:"time_sec"`
	Energy     string `json:"energy_joules"`
	CO2        string `json:"co2_g"`
}

func Row(r domain.BenchmarkResult) ResultRow {
	return ResultRow{
		Algorithm:  r.Algorithm,
		Complexity: r.Complexity,
		TimeSec:    FormatSeconds(r.TimeSec),
		Energy:     fmt.Sprintf("%.6f", r.EnergyJoules),
		CO2:        fmt.Sprintf("%.6f", r.CO2Grams),
	}
}

type SavingsView struct {
	BestAlgorithm    string `json:"best_algorithm"`
	WorstAlgorithm   string `json:"worst_algorithm"`
	EnergySaved      string `json:"energy_saved"`
	CO2Saved         string `json:"co2_saved"`
	PercentageSaved  string `json:"percentage_saved,omitempty"`
	TreeDays         string `json:"tree_days"`
	LightbulbMinutes string `json:"lightbulb_minutes"`
}

func NewSavingsView(s compare.Savings) SavingsView {
	v := SavingsView{
		BestAlgorithm:    s.Best.Algorithm,
		WorstAlgorithm:   s.Worst.Algorithm,
		EnergySaved:      fmt.Sprintf("%.6fJ", s.EnergySavedJ),
		CO2Saved:         fmt.Sprintf("%.6fg", s.CO2SavedG),
		TreeDays:         fmt.Sprintf("%.2f", s.TreeDays),
		LightbulbMinutes: fmt.Sprintf("%.1f", s.LightbulbMinutes),
	}
	if s.PercentageSaved != nil {
		v.PercentageSaved = compare.FormatPercent(*s.PercentageSaved)
	}
	return v
}

type AnalysisView struct {
	Run          domain.BenchmarkRun `json:"run"`
	Rows         []ResultRow         `json:"rows"`
	BestByEnergy string              `json:"best_by_energy"`
	BestByTime   string              `json:"best_by_time"`
	Summary      *compare.Summary    `json:"summary"`
	Savings      *SavingsView        `json:"savings,omitempty"`
	SourceView
}

// NewAnalysisView reduces a run for display. The savings card is left out when
// there is nothing to compare.
func NewAnalysisView(run domain.BenchmarkRun) (*AnalysisView, error) {
	summary, err := compare.Summarize(run.Results)
	if err != nil {
		return nil, err
	}

	rows := make([]ResultRow, 0, len(run.Results))
	for _, r := range run.Results {
		rows = append(rows, Row(r))
	}

	v := &AnalysisView{
		Run:          run,
		Rows:         rows,
		BestByEnergy: summary.BestByEnergy.Algorithm,
		BestByTime:   summary.BestByTime.Algorithm,
		Summary:      summary,
		SourceView:   Label(run.Source),
	}
	if !summary.SavingsSuppressed() {
		sv := NewSavingsView(*summary.Savings)
		v.Savings = &sv
	}
	return v, nil
}

type FootprintView struct {
	Footprint domain.SystemFootprint `json:"footprint"`
	Seq       uint64                 `json:"seq"`
	CPU       string                 `json:"cpu"`
	Memory    string                 `json:"memory"`
	Power     string                 `json:"power"`
	Carbon    string                 `json:"carbon"`
	Energy    string                 `json:"energy"`
	SourceView
}

func NewFootprintView(fp domain.SystemFootprint, source domain.Source, seq uint64) FootprintView {
	return FootprintView{
		Footprint:  fp,
		Seq:        seq,
		CPU:        FormatPercent(fp.CPUPercent),
		Memory:     FormatGB(fp.MemoryUsedGB),
		Power:      fmt.Sprintf("%.1f W", fp.PowerWatts),
		Carbon:     FormatCarbonRate(fp.CarbonKgPerHour),
		Energy:     FormatKWh(fp.EnergyKWh),
		SourceView: Label(source),
	}
}

func FormatSeconds(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func FormatGB(v float64) string {
	return fmt.Sprintf("%.1f GB", v)
}

func FormatKWh(v float64) string {
	return fmt.Sprintf("%.4f kWh", v)
}

// FormatCarbonRate shows kg per hour as grams per hour.
func FormatCarbonRate(kgPerHour float64) string {
	return fmt.Sprintf("%.1f g/h", kgPerHour*1000)
}
