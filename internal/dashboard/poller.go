package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/apperr"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/internal/fallback"
	"github.com/DjordjeVuckovic/green-bench/internal/metrics"
)

var (
	// ErrStalePoll is returned by Poll when a newer poll was issued before this
	// one completed. Its result is discarded.
	ErrStalePoll      = errors.New("footprint poll superseded by a newer poll")
	ErrPollerRunning  = errors.New("footprint poller is already running")
	ErrNoFootprintYet = errors.New("no footprint has been polled yet")
)

type PollerOption func(p *FootprintPoller)

// FootprintPoller refreshes the system footprint on a fixed interval. Each
// poll takes a sequence number and cancels the poll before it; a result is
// applied only if its number is still the latest issued, so a slow response
// can never overwrite a newer one.
type FootprintPoller struct {
	backend  FootprintBackend
	fallback fallback.FootprintGenerator
	interval time.Duration
	metrics  *metrics.Metrics

	mu       sync.Mutex
	issued   uint64
	settled  uint64
	wake     chan struct{}
	inFlight context.CancelFunc
	current  *FootprintView
	running  bool
}

func NewFootprintPoller(backend FootprintBackend, opts ...PollerOption) *FootprintPoller {
	p := &FootprintPoller{
		backend:  backend,
		fallback: fallback.NewRandom(),
		interval: DefaultPollInterval,
		wake:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func WithInterval(d time.Duration) PollerOption {
	return func(p *FootprintPoller) {
		if d > 0 {
			p.interval = d
		}
	}
}

func WithFootprintGenerator(g fallback.FootprintGenerator) PollerOption {
	return func(p *FootprintPoller) {
		p.fallback = g
	}
}

func WithPollerMetrics(m *metrics.Metrics) PollerOption {
	return func(p *FootprintPoller) {
		p.metrics = m
	}
}

func (p *FootprintPoller) Interval() time.Duration {
	return p.interval
}

// Poll fetches one footprint. On backend failure the view carries demo data
// and the Demo Mode badge.
func (p *FootprintPoller) Poll(ctx context.Context) (FootprintView, error) {
	pollCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p.mu.Lock()
	p.issued++
	seq := p.issued
	if p.inFlight != nil {
		p.inFlight()
	}
	p.inFlight = cancel
	p.mu.Unlock()

	view, err := p.poll(ctx, pollCtx, seq)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq == p.issued {
		p.settled = seq
		p.inFlight = nil
	}
	close(p.wake)
	p.wake = make(chan struct{})

	if err != nil {
		return FootprintView{}, err
	}
	if seq != p.issued {
		p.metrics.ObservePoll("stale")
		return FootprintView{}, ErrStalePoll
	}
	p.current = &view

	p.metrics.ObservePoll(string(view.Source))
	p.metrics.ObserveSource("footprint", view.Source)
	p.metrics.ObserveFootprint(view.Footprint)
	return view, nil
}

func (p *FootprintPoller) poll(ctx, pollCtx context.Context, seq uint64) (FootprintView, error) {
	fp, err := p.backend.SystemFootprint(pollCtx)
	if err == nil {
		p.metrics.ObserveCall("system_footprint", nil)
		return NewFootprintView(fp, domain.SourceLive, seq), nil
	}
	if ctx.Err() != nil {
		return FootprintView{}, ctx.Err()
	}
	if pollCtx.Err() != nil {
		p.metrics.ObservePoll("stale")
		return FootprintView{}, ErrStalePoll
	}
	p.metrics.ObserveCall("system_footprint", err)
	slog.Warn("Footprint poll failed, showing demo data", "seq", seq, "error", err, "kind", apperr.Classify(err))

	return NewFootprintView(p.demoFootprint(pollCtx), domain.SourceDemo, seq), nil
}

func (p *FootprintPoller) demoFootprint(ctx context.Context) domain.SystemFootprint {
	fp, err := p.fallback.GenerateFootprint(ctx)
	if err != nil {
		slog.Warn("Footprint fallback failed, using random data", "error", err)
		fp, _ = fallback.NewRandom().GenerateFootprint(ctx)
	}
	return fp
}

// Refresh polls like Poll, but a caller whose poll is superseded waits for the
// newer poll and gets its view instead of ErrStalePoll. When no newer poll can
// apply a result the last applied view is returned, or a demo view if there is
// none yet.
func (p *FootprintPoller) Refresh(ctx context.Context) (FootprintView, error) {
	v, err := p.Poll(ctx)
	if !errors.Is(err, ErrStalePoll) {
		return v, err
	}

	p.mu.Lock()
	seq := p.issued
	p.mu.Unlock()
	return p.await(ctx, seq)
}

// await blocks until a poll numbered seq or later is applied, or until the
// latest issued poll settled without applying anything.
func (p *FootprintPoller) await(ctx context.Context, seq uint64) (FootprintView, error) {
	for {
		p.mu.Lock()
		cur, idle, wake := p.current, p.settled == p.issued, p.wake
		p.mu.Unlock()

		if cur != nil && (cur.Seq >= seq || idle) {
			return *cur, nil
		}
		if idle {
			return NewFootprintView(p.demoFootprint(ctx), domain.SourceDemo, 0), nil
		}

		select {
		case <-ctx.Done():
			return FootprintView{}, ctx.Err()
		case <-wake:
		}
	}
}

// Current returns the last applied footprint.
func (p *FootprintPoller) Current() (FootprintView, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return FootprintView{}, ErrNoFootprintYet
	}
	return *p.current, nil
}

// Latest returns the current footprint, polling once if none was applied yet.
func (p *FootprintPoller) Latest(ctx context.Context) (FootprintView, error) {
	if v, err := p.Current(); err == nil {
		return v, nil
	}
	return p.Refresh(ctx)
}

// Run polls immediately and then every interval until ctx is done. It returns
// after the last poll has finished and may be called again afterwards.
func (p *FootprintPoller) Run(ctx context.Context) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return ErrPollerRunning
	}
	p.running = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.running = false
		p.mu.Unlock()
	}()

	slog.Info("Footprint poller started", "interval", p.interval)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if _, err := p.Poll(ctx); err != nil && !errors.Is(err, ErrStalePoll) {
			if ctx.Err() != nil {
				slog.Info("Footprint poller stopped")
				return nil
			}
			slog.Error("Footprint poll failed", "error", err)
		}

		select {
		case <-ctx.Done():
			slog.Info("Footprint poller stopped")
			return nil
		case <-ticker.C:
		}
	}
}
