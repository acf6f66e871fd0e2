package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/dashboard"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/internal/report"
	"github.com/DjordjeVuckovic/green-bench/pkg/pagination"
	"github.com/spf13/cobra"
)

func newStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the benchmarking backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := c.app.Service.Analyzer.Status(cmd.Context(), true)
			return c.render(cmd.OutOrStdout(), v, func(w io.Writer) { report.WriteStatus(v, w) })
		},
	}
}

func newAlgorithmsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the algorithms that can be benchmarked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := c.app.Service.Optimizer.Algorithms(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), v, func(w io.Writer) { report.WriteAlgorithms(v, w) })
		},
	}
}

func newAnalyzeCmd(c *cli) *cobra.Command {
	var (
		req  dashboard.AnalysisRequest
		runs int
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Benchmark algorithms and show the energy and CO2 they use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if runs > 1 {
				v, err := c.app.Service.Analyzer.RunSeries(cmd.Context(), req, runs)
				if err != nil {
					return err
				}
				return c.render(cmd.OutOrStdout(), v, func(w io.Writer) { report.WriteSeries(v, w) })
			}

			v, err := c.app.Service.Analyzer.Run(cmd.Context(), req)
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), v, func(w io.Writer) { report.WriteAnalysis(v, w) })
		},
	}
	cmd.Flags().StringSliceVarP(&req.Algorithms, "algorithms", "a", []string{"bubble_sort", "quick_sort", "merge_sort"}, "algorithm ids")
	cmd.Flags().IntVarP(&req.DatasetSize, "size", "n", dashboard.DefaultDatasetSize, "dataset size")
	cmd.Flags().IntVarP(&runs, "runs", "r", 1, "repeat the analysis and summarise the spread")
	return cmd
}

func newHistoryCmd(c *cli) *cobra.Command {
	var page pagination.OffsetRequest

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past analyses (needs STORAGE_TYPE pg or es)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = page.Validate()
			res, err := c.app.Service.Analyzer.History(cmd.Context(), page)
			if errors.Is(err, dashboard.ErrHistoryDisabled) {
				return fmt.Errorf("%w: set STORAGE_TYPE to pg or es", err)
			}
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), res, func(w io.Writer) { report.WriteHistory(res, w) })
		},
	}
	cmd.Flags().IntVar(&page.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&page.Size, "page-size", 10, "runs per page")
	return cmd
}

func newCompareCmd(c *cli) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "compare <algorithm> <algorithm>",
		Short: "Compare two algorithms head to head",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.app.Service.Optimizer.Compare(cmd.Context(), args[0], args[1], size)
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), v, func(w io.Writer) { report.WriteComparison(v, w) })
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", dashboard.DefaultDatasetSize, "dataset size for demo data")
	return cmd
}

func newFootprintCmd(c *cli) *cobra.Command {
	var (
		watch    bool
		interval time.Duration
		count    int
	)

	cmd := &cobra.Command{
		Use:   "footprint",
		Short: "Show the current system footprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !watch {
				count = 1
			}
			p := c.app.Service.Footprint
			if interval <= 0 {
				interval = p.Interval()
			}

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for i := 0; count <= 0 || i < count; i++ {
				if i > 0 {
					select {
					case <-cmd.Context().Done():
						return nil
					case <-ticker.C:
					}
				}
				v, err := p.Poll(cmd.Context())
				if err != nil {
					if cmd.Context().Err() != nil {
						return nil
					}
					return err
				}
				if err := c.render(cmd.OutOrStdout(), v, func(w io.Writer) { report.WriteFootprint(v, w) }); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep polling")
	cmd.Flags().DurationVar(&interval, "interval", 0, "poll interval when watching (default POLL_INTERVAL)")
	cmd.Flags().IntVar(&count, "count", 0, "stop after this many polls when watching")
	return cmd
}

func newEstimateCmd(c *cli) *cobra.Command {
	var cpu, memGB float64

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate power and carbon for a CPU and memory load",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := c.app.Service.Optimizer.Estimate(cmd.Context(), cpu, memGB)
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), v, func(w io.Writer) { report.WriteEstimate(v, w) })
		},
	}
	cmd.Flags().Float64Var(&cpu, "cpu", domain.EstimateDefaultCPU, "CPU usage percent")
	cmd.Flags().Float64Var(&memGB, "memory", domain.EstimateDefaultMemGB, "memory in GB")
	return cmd
}

func newOptimizeCmd(c *cli) *cobra.Command {
	var (
		strategy string
		size     int
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Recommend an algorithm for carbon_first, speed_first or balanced",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := c.app.Service.Optimizer.Optimize(cmd.Context(), domain.Strategy(strategy), size)
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), v, func(w io.Writer) { report.WriteOptimization(v, w) })
		},
	}
	cmd.Flags().StringVarP(&strategy, "strategy", "s", string(domain.StrategyBalanced), "optimization strategy")
	cmd.Flags().IntVarP(&size, "size", "n", dashboard.DefaultDatasetSize, "dataset size")
	return cmd
}

func newScenarioCmd(c *cli) *cobra.Command {
	var s domain.Scenario

	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Recommend an algorithm for a workload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := c.app.Service.Optimizer.Scenario(cmd.Context(), s)
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), v, func(w io.Writer) { report.WriteScenario(v, w) })
		},
	}
	cmd.Flags().BoolVar(&s.CPUIntensive, "cpu-intensive", false, "workload is CPU bound")
	cmd.Flags().BoolVar(&s.MemoryIntensive, "memory-intensive", false, "workload is memory constrained")
	cmd.Flags().BoolVar(&s.LatencySensitive, "latency-sensitive", false, "workload is latency sensitive")
	return cmd
}
