package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/internal/fallback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func liveFootprint(cpu float64) func(context.Context) (domain.SystemFootprint, error) {
	return func(context.Context) (domain.SystemFootprint, error) {
		return domain.SystemFootprint{
			CPUPercent:      cpu,
			MemoryUsedGB:    7.96,
			PowerWatts:      55.5,
			EnergyKWh:       0.0555,
			CarbonKgPerHour: 0.0264,
			Timestamp:       time.Now(),
		}, nil
	}
}

func TestPoller_LiveFootprint(t *testing.T) {
	p := NewFootprintPoller(&fakeBackend{footprint: liveFootprint(42.34)})

	v, err := p.Poll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(1), v.Seq)
	assert.Equal(t, BadgeLive, v.Badge)
	assert.Empty(t, v.Banner)
	assert.Equal(t, "42.3%", v.CPU)
	assert.Equal(t, "8.0 GB", v.Memory)
	assert.Equal(t, "55.5 W", v.Power)
	assert.Equal(t, "26.4 g/h", v.Carbon)
	assert.Equal(t, "0.0555 kWh", v.Energy)
}

func TestPoller_FailingPollsShowOnlyDemoMode(t *testing.T) {
	backend := &fakeBackend{}
	p := NewFootprintPoller(backend, WithFootprintGenerator(fallback.NewSeeded(3)))

	for i := 1; i <= 3; i++ {
		v, err := p.Poll(context.Background())
		require.NoError(t, err)

		assert.Equal(t, uint64(i), v.Seq)
		assert.Equal(t, domain.SourceDemo, v.Source)
		assert.Equal(t, BadgeDemo, v.Badge)
		assert.NotEqual(t, BadgeLive, v.Badge)
		assert.Equal(t, DemoBanner, v.Banner)
	}

	cur, err := p.Current()
	require.NoError(t, err)
	assert.Equal(t, BadgeDemo, cur.Badge)
	assert.Equal(t, 3, backend.Calls("footprint"))
}

func TestPoller_RecoversToLive(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	live := liveFootprint(10)
	backend := &fakeBackend{footprint: func(ctx context.Context) (domain.SystemFootprint, error) {
		if fail.Load() {
			return domain.SystemFootprint{}, errOffline
		}
		return live(ctx)
	}}
	p := NewFootprintPoller(backend)

	v, err := p.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BadgeDemo, v.Badge)

	fail.Store(false)
	v, err = p.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BadgeLive, v.Badge)
	assert.Empty(t, v.Banner)
}

type failingGenerator struct{}

func (failingGenerator) GenerateFootprint(context.Context) (domain.SystemFootprint, error) {
	return domain.SystemFootprint{}, errors.New("no sensors")
}

func TestPoller_FallbackGeneratorFailure(t *testing.T) {
	p := NewFootprintPoller(&fakeBackend{}, WithFootprintGenerator(failingGenerator{}))

	v, err := p.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BadgeDemo, v.Badge)
	assert.Positive(t, v.Footprint.PowerWatts)
}

func TestPoller_StaleResponseIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	var slowCtx context.Context

	backend := &fakeBackend{footprint: func(ctx context.Context) (domain.SystemFootprint, error) {
		if calls.Add(1) == 1 {
			slowCtx = ctx
			close(started)
			<-release
			return liveFootprint(90)(ctx)
		}
		return liveFootprint(20)(ctx)
	}}
	p := NewFootprintPoller(backend)

	type result struct {
		view FootprintView
		err  error
	}
	first := make(chan result, 1)
	go func() {
		v, err := p.Poll(context.Background())
		first <- result{v, err}
	}()
	<-started

	second, err := p.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second.Seq)
	assert.Error(t, slowCtx.Err(), "superseded poll should be cancelled")

	close(release)
	r := <-first
	assert.ErrorIs(t, r.err, ErrStalePoll)

	cur, err := p.Current()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), cur.Seq)
	assert.Equal(t, 20.0, cur.Footprint.CPUPercent)
}

func TestPoller_CallerCancellation(t *testing.T) {
	backend := &fakeBackend{footprint: func(ctx context.Context) (domain.SystemFootprint, error) {
		<-ctx.Done()
		return domain.SystemFootprint{}, ctx.Err()
	}}
	p := NewFootprintPoller(backend)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Poll(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	_, err = p.Current()
	assert.ErrorIs(t, err, ErrNoFootprintYet)
}

func TestPoller_Latest(t *testing.T) {
	backend := &fakeBackend{footprint: liveFootprint(5)}
	p := NewFootprintPoller(backend)

	v, err := p.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v.Seq)

	v, err = p.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v.Seq)
	assert.Equal(t, 1, backend.Calls("footprint"))
}

func TestPoller_ConcurrentFirstLatest(t *testing.T) {
	started := make(chan struct{})
	var calls atomic.Int32
	backend := &fakeBackend{footprint: func(ctx context.Context) (domain.SystemFootprint, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-ctx.Done()
			return domain.SystemFootprint{}, ctx.Err()
		}
		time.Sleep(100 * time.Millisecond)
		return liveFootprint(33)(ctx)
	}}
	p := NewFootprintPoller(backend)

	type result struct {
		view FootprintView
		err  error
	}
	first := make(chan result, 1)
	go func() {
		v, err := p.Latest(context.Background())
		first <- result{v, err}
	}()
	<-started

	second, err := p.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second.Seq)

	r := <-first
	require.NoError(t, r.err)
	assert.Equal(t, uint64(2), r.view.Seq)
	assert.Equal(t, BadgeLive, r.view.Badge)
	assert.Equal(t, 33.0, r.view.Footprint.CPUPercent)
}

func TestPoller_RefreshWhenSupersedingCallerGivesUp(t *testing.T) {
	started := make(chan struct{}, 2)
	backend := &fakeBackend{footprint: func(ctx context.Context) (domain.SystemFootprint, error) {
		started <- struct{}{}
		<-ctx.Done()
		return domain.SystemFootprint{}, ctx.Err()
	}}
	p := NewFootprintPoller(backend)

	type result struct {
		view FootprintView
		err  error
	}
	first := make(chan result, 1)
	go func() {
		v, err := p.Refresh(context.Background())
		first <- result{v, err}
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := p.Refresh(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	select {
	case r := <-first:
		require.NoError(t, r.err)
		assert.Equal(t, BadgeDemo, r.view.Badge)
		assert.Positive(t, r.view.Footprint.PowerWatts)
	case <-time.After(2 * time.Second):
		t.Fatal("superseded refresh did not return")
	}

	_, err = p.Current()
	assert.ErrorIs(t, err, ErrNoFootprintYet)
}

func TestPoller_RunIsRestartable(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	backend := &fakeBackend{footprint: liveFootprint(15)}
	p := NewFootprintPoller(backend, WithInterval(5*time.Millisecond))

	for round := 0; round < 2; round++ {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- p.Run(ctx) }()

		before := backend.Calls("footprint")
		require.Eventually(t, func() bool {
			return backend.Calls("footprint") >= before+3
		}, time.Second, time.Millisecond)

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("poller did not stop")
		}
	}

	cur, err := p.Current()
	require.NoError(t, err)
	assert.Equal(t, BadgeLive, cur.Badge)
}

func TestPoller_RunTwice(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	p := NewFootprintPoller(&fakeBackend{footprint: liveFootprint(1)}, WithInterval(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	require.Eventually(t, func() bool {
		_, err := p.Current()
		return err == nil
	}, time.Second, time.Millisecond)

	assert.ErrorIs(t, p.Run(context.Background()), ErrPollerRunning)

	cancel()
	assert.NoError(t, <-done)
}

func TestPoller_DefaultInterval(t *testing.T) {
	p := NewFootprintPoller(&fakeBackend{}, WithInterval(0))
	assert.Equal(t, DefaultPollInterval, p.Interval())
}
