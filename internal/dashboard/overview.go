package dashboard

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

const recentRuns = 3

// Service groups the dashboard's views.
type Service struct {
	Analyzer  *Analyzer
	Footprint *FootprintPoller
	Optimizer *Optimizer
}

type OverviewView struct {
	Footprint  FootprintView            `json:"footprint"`
	Backend    StatusView               `json:"backend"`
	Algorithms View[[]domain.Algorithm] `json:"algorithms"`
	Recent     []domain.BenchmarkRun    `json:"recent"`
}

// Overview gathers the landing page data concurrently. Only caller
// cancellation fails it; every part degrades on its own otherwise.
func (s *Service) Overview(ctx context.Context) (*OverviewView, error) {
	var v OverviewView
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fp, err := s.Footprint.Latest(gctx)
		if err != nil {
			return err
		}
		v.Footprint = fp
		return nil
	})
	g.Go(func() error {
		v.Backend = s.Analyzer.Status(gctx, false)
		return gctx.Err()
	})
	g.Go(func() error {
		algos, err := s.Optimizer.Algorithms(gctx)
		if err != nil {
			return err
		}
		v.Algorithms = algos
		return nil
	})
	g.Go(func() error {
		page, err := s.Analyzer.History(gctx, pagination.OffsetRequest{Page: 1, Size: recentRuns})
		if err != nil {
			slog.Debug("Recent runs unavailable", "error", err)
			return nil
		}
		v.Recent = page.Items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &v, nil
}
