package dashboard

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_OverviewOffline(t *testing.T) {
	store := in_mem.NewRunStore()
	backend := &fakeBackend{}
	s := &Service{
		Analyzer:  NewAnalyzer(backend, WithRunStore(store), WithDelays(0, 0)),
		Footprint: NewFootprintPoller(backend),
		Optimizer: NewOptimizer(backend),
	}

	for i := 0; i < 4; i++ {
		_, err := s.Analyzer.Run(context.Background(), AnalysisRequest{Algorithms: []string{"quick_sort"}})
		require.NoError(t, err)
	}

	v, err := s.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, BadgeDemo, v.Footprint.Badge)
	assert.False(t, v.Backend.Online)
	assert.Equal(t, BadgeDemo, v.Algorithms.Badge)
	assert.Len(t, v.Recent, recentRuns)
}

func TestService_OverviewLiveWithoutHistory(t *testing.T) {
	backend := &fakeBackend{
		status:    onlineStatus,
		footprint: liveFootprint(30),
		algorithms: func(context.Context) ([]domain.Algorithm, error) {
			return []domain.Algorithm{{ID: "quick_sort", Name: "Quick Sort"}}, nil
		},
	}
	s := &Service{
		Analyzer:  NewAnalyzer(backend),
		Footprint: NewFootprintPoller(backend),
		Optimizer: NewOptimizer(backend),
	}

	v, err := s.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, BadgeLive, v.Footprint.Badge)
	assert.Equal(t, BadgeConnected, v.Backend.Badge)
	assert.Len(t, v.Algorithms.Data, 1)
	assert.Empty(t, v.Recent)
}

func TestService_OverviewCancelled(t *testing.T) {
	backend := &fakeBackend{}
	s := &Service{
		Analyzer:  NewAnalyzer(backend),
		Footprint: NewFootprintPoller(backend),
		Optimizer: NewOptimizer(backend),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Overview(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
