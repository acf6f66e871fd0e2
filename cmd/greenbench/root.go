package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/app"
	"github.com/DjordjeVuckovic/green-bench/internal/report"
	"github.com/DjordjeVuckovic/green-bench/internal/storage"
	"github.com/DjordjeVuckovic/green-bench/pkg/logger"
	"github.com/spf13/cobra"
)

const envPath = "cmd/greenbench/.env"

const (
	outputTable = "table"
	outputJSON  = "json"
)

type cli struct {
	output     string
	backendURL string
	timeout    time.Duration
	logLevel   string

	app *app.App
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "greenbench",
		Short:         "Measure and compare the carbon footprint of algorithms",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.app != nil {
				c.app.Close()
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&c.output, "output", "o", outputTable, "output format: table or json")
	f.StringVar(&c.backendURL, "backend-url", "", "benchmarking backend URL (overrides BACKEND_URL)")
	f.DurationVar(&c.timeout, "timeout", 0, "per-request timeout (overrides BACKEND_TIMEOUT)")
	f.StringVar(&c.logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")

	root.AddCommand(
		newStatusCmd(c),
		newAlgorithmsCmd(c),
		newAnalyzeCmd(c),
		newHistoryCmd(c),
		newCompareCmd(c),
		newFootprintCmd(c),
		newEstimateCmd(c),
		newOptimizeCmd(c),
		newScenarioCmd(c),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	if c.output != outputTable && c.output != outputJSON {
		return fmt.Errorf("unknown output %q, expected %s or %s", c.output, outputTable, outputJSON)
	}

	level := c.logLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "warn"
	}
	slog.SetDefault(logger.New(cmd.ErrOrStderr(), logger.ParseLevel(level)))

	cfg, err := app.LoadConfig(envPath)
	if err != nil {
		return err
	}
	if c.backendURL != "" {
		cfg.BackendURL = c.backendURL
	}
	if c.timeout > 0 {
		cfg.BackendTimeout = c.timeout
	}

	var opts []app.Option
	if cfg.Storage.Type == storage.InMem {
		// In-memory history would not outlive the command.
		opts = append(opts, app.WithoutHistory())
	}

	c.app, err = app.New(cmd.Context(), cfg, opts...)
	return err
}

// render writes v as JSON, or calls table for the text report.
func (c *cli) render(w io.Writer, v any, table func(io.Writer)) error {
	if c.output == outputJSON {
		return report.WriteJSON(v, w)
	}
	table(w)
	return nil
}
