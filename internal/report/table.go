package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/green-bench/internal/compare"
	"github.com/DjordjeVuckovic/green-bench/internal/dashboard"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/pkg/pagination"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func writeHeader(tw *tabwriter.Writer, header ...string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func writeRow(tw *tabwriter.Writer, cells ...string) {
	fmt.Fprintln(tw, strings.Join(cells, "\t"))
}

func writeSource(tw *tabwriter.Writer, v dashboard.SourceView) {
	fmt.Fprintf(tw, "[%s]\n", v.Badge)
	if v.Banner != "" {
		fmt.Fprintf(tw, "%s\n", v.Banner)
	}
	fmt.Fprintln(tw)
}

func WriteAnalysis(v *dashboard.AnalysisView, w io.Writer) {
	tw := newTabWriter(w)

	fmt.Fprintf(tw, "\n=== Algorithm Analysis (n=%d) ===\n", v.Run.DatasetSize)
	writeSource(tw, v.SourceView)

	writeHeader(tw, "Algorithm", "Complexity", "Time (s)", "Energy (J)", "CO2 (g)")
	for _, r := range v.Rows {
		writeRow(tw, r.Algorithm, r.Complexity, r.TimeSec, r.Energy, r.CO2)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Most efficient:\t%s\n", v.BestByEnergy)
	fmt.Fprintf(tw, "Fastest:\t%s\n", v.BestByTime)

	if s := v.Savings; s != nil {
		fmt.Fprintf(tw, "\nChoosing %s over %s saves\n", s.BestAlgorithm, s.WorstAlgorithm)
		fmt.Fprintf(tw, "  Energy:\t%s\n", s.EnergySaved)
		fmt.Fprintf(tw, "  CO2:\t%s\n", s.CO2Saved)
		if s.PercentageSaved != "" {
			fmt.Fprintf(tw, "  Reduction:\t%s\n", s.PercentageSaved)
		}
		fmt.Fprintf(tw, "  Tree days:\t%s\n", s.TreeDays)
		fmt.Fprintf(tw, "  Lightbulb minutes:\t%s\n", s.LightbulbMinutes)
	}

	fmt.Fprintf(tw, "\nRun %s at %s\n", v.Run.ID, v.Run.CreatedAt.Format("2006-01-02 15:04:05"))
	tw.Flush()
}

func WriteFootprint(v dashboard.FootprintView, w io.Writer) {
	tw := newTabWriter(w)

	fmt.Fprintf(tw, "\n=== System Footprint #%d ===\n", v.Seq)
	writeSource(tw, v.SourceView)

	fmt.Fprintf(tw, "CPU:\t%s\n", v.CPU)
	fmt.Fprintf(tw, "Memory:\t%s\n", v.Memory)
	fmt.Fprintf(tw, "Power:\t%s\n", v.Power)
	fmt.Fprintf(tw, "Carbon:\t%s\n", v.Carbon)
	fmt.Fprintf(tw, "Energy:\t%s\n", v.Energy)
	if !v.Footprint.Timestamp.IsZero() {
		fmt.Fprintf(tw, "Sampled:\t%s\n", v.Footprint.Timestamp.Format("15:04:05"))
	}
	tw.Flush()
}

func WriteComparison(v dashboard.View[domain.Comparison], w io.Writer) {
	tw := newTabWriter(w)
	c := v.Data

	fmt.Fprintf(tw, "\n=== %s vs %s ===\n", c.Algorithm1.Name, c.Algorithm2.Name)
	writeSource(tw, v.SourceView)

	writeHeader(tw, "Algorithm", "Time (s)", "CO2 (g)")
	for _, a := range []domain.ComparedAlgorithm{c.Algorithm1, c.Algorithm2} {
		writeRow(tw, a.Name, dashboard.FormatSeconds(a.TimeSeconds), fmt.Sprintf("%.6f", a.CarbonGCO2))
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Fastest:\t%s\n", c.Fastest)
	fmt.Fprintf(tw, "Most efficient:\t%s\n", c.MostEfficient)
	if c.TimeDifferencePercent != nil {
		fmt.Fprintf(tw, "Time difference:\t%s\n", compare.FormatSignedPercent(*c.TimeDifferencePercent))
	}
	if c.CarbonDifferencePercent != nil {
		fmt.Fprintf(tw, "Carbon difference:\t%s\n", compare.FormatSignedPercent(*c.CarbonDifferencePercent))
	}
	tw.Flush()
}

func WriteOptimization(v dashboard.View[domain.OptimizationRecommendation], w io.Writer) {
	tw := newTabWriter(w)
	r := v.Data

	fmt.Fprintf(tw, "\n=== Optimization (%s) ===\n", r.Strategy)
	writeSource(tw, v.SourceView)

	fmt.Fprintf(tw, "Recommended:\t%s\n", r.Algorithm)
	fmt.Fprintf(tw, "Carbon saved:\t%s\n", r.CarbonSaved)
	fmt.Fprintf(tw, "Performance impact:\t%s\n", r.PerformanceImpact)
	fmt.Fprintf(tw, "Annual CO2 saved:\t%.1f kg\n", r.CarbonSavedAnnuallyKg)
	if r.Description != "" {
		fmt.Fprintf(tw, "\n%s\n", r.Description)
	}
	writeAlternatives(tw, r.Alternatives)
	tw.Flush()
}

func WriteScenario(v dashboard.View[domain.ScenarioRecommendation], w io.Writer) {
	tw := newTabWriter(w)
	r := v.Data

	fmt.Fprintf(tw, "\n=== Scenario: %s ===\n", r.Scenario)
	writeSource(tw, v.SourceView)

	fmt.Fprintf(tw, "Recommended:\t%s\n", r.BestAlgorithm)
	fmt.Fprintf(tw, "\n%s\n", r.Explanation)
	writeAlternatives(tw, r.Alternatives)
	tw.Flush()
}

func writeAlternatives(tw *tabwriter.Writer, alts []domain.Alternative) {
	if len(alts) == 0 {
		return
	}
	fmt.Fprintf(tw, "\nAlternatives\n\n")
	writeHeader(tw, "Algorithm", "Score", "Why")
	for _, a := range alts {
		writeRow(tw, a.Algorithm, fmt.Sprintf("%.2f", a.Score), a.Explanation)
	}
}

func WriteAlgorithms(v dashboard.View[[]domain.Algorithm], w io.Writer) {
	tw := newTabWriter(w)

	fmt.Fprintf(tw, "\n=== Algorithms ===\n")
	writeSource(tw, v.SourceView)

	writeHeader(tw, "ID", "Name", "Category", "Time", "Space")
	for _, a := range v.Data {
		writeRow(tw, a.ID, a.DisplayName(), a.Category, a.Complexity, orDash(a.SpaceComplexity))
	}
	tw.Flush()
}

func WriteEstimate(v dashboard.View[domain.FootprintEstimate], w io.Writer) {
	tw := newTabWriter(w)
	e := v.Data

	fmt.Fprintf(tw, "\n=== Footprint Estimate ===\n")
	writeSource(tw, v.SourceView)

	fmt.Fprintf(tw, "CPU:\t%s\n", dashboard.FormatPercent(e.CPUPercent))
	fmt.Fprintf(tw, "Memory:\t%s\n", dashboard.FormatGB(e.MemoryGB))
	fmt.Fprintf(tw, "Power:\t%.2f W\n", e.PowerWatts)
	fmt.Fprintf(tw, "Energy:\t%s\n", dashboard.FormatKWh(e.EnergyKWh))
	fmt.Fprintf(tw, "Carbon:\t%s\n", dashboard.FormatCarbonRate(e.CarbonKgPerHour))
	tw.Flush()
}

func WriteStatus(v dashboard.StatusView, w io.Writer) {
	tw := newTabWriter(w)

	fmt.Fprintf(tw, "\n=== Backend ===\n")
	fmt.Fprintf(tw, "[%s]\n\n", v.Badge)
	fmt.Fprintf(tw, "Online:\t%t\n", v.Online)
	fmt.Fprintf(tw, "Status:\t%s\n", v.Status)
	if len(v.AvailableAlgorithms) > 0 {
		fmt.Fprintf(tw, "Algorithms:\t%s\n", strings.Join(v.AvailableAlgorithms, ", "))
	}
	if v.Message != "" {
		fmt.Fprintf(tw, "Message:\t%s\n", v.Message)
	}
	tw.Flush()
}

func WriteHistory(page *pagination.OffsetResult[domain.BenchmarkRun], w io.Writer) {
	tw := newTabWriter(w)

	fmt.Fprintf(tw, "\n=== Run History (page %d, %d total) ===\n\n", page.Page, page.Total)
	writeHeader(tw, "ID", "Created", "Source", "Size", "Algorithms")
	for _, r := range page.Items {
		writeRow(tw,
			r.ID.String(),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			string(r.Source),
			fmt.Sprintf("%d", r.DatasetSize),
			strings.Join(r.Algorithms, ", "),
		)
	}
	tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func WriteSeries(v *dashboard.SeriesView, w io.Writer) {
	tw := newTabWriter(w)

	fmt.Fprintf(tw, "\n=== Analysis Series (%d runs: %d live, %d demo) ===\n\n", len(v.Runs), v.LiveRuns, v.DemoRuns)
	writeHeader(tw, "Algorithm", "Mean time (s)", "p95 time (s)", "Mean energy (J)", "Stddev energy", "Mean CO2 (g)")
	for _, a := range v.Algorithms {
		writeRow(tw,
			a.Algorithm,
			dashboard.FormatSeconds(a.TimeSec.Mean),
			dashboard.FormatSeconds(a.TimeSec.P95()),
			fmt.Sprintf("%.6f", a.EnergyJoules.Mean),
			fmt.Sprintf("%.6f", a.EnergyJoules.Stddev),
			fmt.Sprintf("%.6f", a.CO2Grams.Mean),
		)
	}
	fmt.Fprintln(tw)

	l := v.Latency
	fmt.Fprintf(tw, "Analysis latency\tmin %.3fs\tmedian %.3fs\tp95 %.3fs\tmax %.3fs\n", l.Min, l.Median, l.P95(), l.Max)
	tw.Flush()
}
