package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/apperr"
	"github.com/DjordjeVuckovic/green-bench/internal/catalog"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/internal/fallback"
	"github.com/DjordjeVuckovic/green-bench/internal/metrics"
	"github.com/DjordjeVuckovic/green-bench/internal/storage"
	"github.com/DjordjeVuckovic/green-bench/pkg/pagination"
	"github.com/google/uuid"
)

type AnalysisRequest struct {
	Algorithms  []string `json:"algorithms"`
	DatasetSize int      `json:"dataset_size"`
}

func (r *AnalysisRequest) Validate() error {
	if len(r.Algorithms) == 0 {
		return apperr.NewValidation("select at least one algorithm")
	}
	seen := make(map[string]bool, len(r.Algorithms))
	for _, a := range r.Algorithms {
		if a == "" {
			return apperr.NewValidation("algorithm id must not be empty")
		}
		if seen[a] {
			return apperr.NewValidation(fmt.Sprintf("algorithm %q selected twice", a))
		}
		seen[a] = true
	}
	if r.DatasetSize == 0 {
		r.DatasetSize = DefaultDatasetSize
	}
	if r.DatasetSize < 0 || r.DatasetSize > MaxDatasetSize {
		return apperr.NewValidation(fmt.Sprintf("dataset_size must be between 1 and %d", MaxDatasetSize))
	}
	return nil
}

type StatusView struct {
	domain.BackendStatus
	Badge     string    `json:"badge"`
	CheckedAt time.Time `json:"checked_at"`
}

type AnalyzerOption func(a *Analyzer)

// Analyzer runs benchmark analyses against the backend and falls back to
// synthetic results when it is offline or a call fails.
type Analyzer struct {
	backend BenchmarkBackend
	catalog *catalog.Catalog
	bench   fallback.BenchmarkGenerator
	store   storage.RunStore
	metrics *metrics.Metrics

	failureDelay time.Duration
	offlineDelay time.Duration
	statusTTL    time.Duration
	now          func() time.Time

	mu     sync.Mutex
	status *StatusView
}

func NewAnalyzer(backend BenchmarkBackend, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		backend:      backend,
		catalog:      catalog.Default(),
		bench:        fallback.NewRandom(),
		failureDelay: DefaultFailureDelay,
		offlineDelay: DefaultOfflineDelay,
		statusTTL:    DefaultStatusTTL,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func WithCatalog(c *catalog.Catalog) AnalyzerOption {
	return func(a *Analyzer) {
		a.catalog = c
	}
}

func WithBenchmarkGenerator(g fallback.BenchmarkGenerator) AnalyzerOption {
	return func(a *Analyzer) {
		a.bench = g
	}
}

func WithRunStore(s storage.RunStore) AnalyzerOption {
	return func(a *Analyzer) {
		a.store = s
	}
}

func WithAnalyzerMetrics(m *metrics.Metrics) AnalyzerOption {
	return func(a *Analyzer) {
		a.metrics = m
	}
}

// WithDelays sets how long to wait before showing demo data after a failed
// call and when the backend is already known to be offline.
func WithDelays(failure, offline time.Duration) AnalyzerOption {
	return func(a *Analyzer) {
		a.failureDelay = failure
		a.offlineDelay = offline
	}
}

// WithStatusTTL sets how long a status probe is trusted before Run probes again.
func WithStatusTTL(d time.Duration) AnalyzerOption {
	return func(a *Analyzer) {
		a.statusTTL = d
	}
}

// Status returns the cached backend status, probing when it is missing, older
// than the TTL or refresh is set.
func (a *Analyzer) Status(ctx context.Context, refresh bool) StatusView {
	a.mu.Lock()
	cached := a.status
	a.mu.Unlock()

	if cached != nil && !refresh && a.now().Sub(cached.CheckedAt) < a.statusTTL {
		return *cached
	}

	st, err := a.backend.BenchmarkStatus(ctx)
	a.metrics.ObserveCall("benchmark_status", err)

	view := StatusView{BackendStatus: st, Badge: BadgeConnected, CheckedAt: a.now()}
	if err != nil {
		view.BackendStatus = domain.BackendStatus{Online: false, Status: "offline", Message: err.Error()}
		view.Badge = BadgeDemo
		if ctx.Err() != nil {
			return view
		}
		slog.Warn("Backend not available, using demo data", "error", err, "kind", apperr.Classify(err))
	}

	a.mu.Lock()
	a.status = &view
	a.mu.Unlock()
	return view
}

// Run benchmarks the requested algorithms. Errors are only returned for
// invalid requests and caller cancellation; backend failures degrade to demo
// results labelled as such.
func (a *Analyzer) Run(ctx context.Context, req AnalysisRequest) (*AnalysisView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	source := domain.SourceDemo
	var results []domain.BenchmarkResult

	if a.Status(ctx, false).Online {
		res, err := a.backend.RunBenchmark(ctx, req.Algorithms, req.DatasetSize)
		a.metrics.ObserveCall("benchmark", err)
		switch {
		case err == nil:
			results, source = res, domain.SourceLive
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			slog.Warn("Analysis failed, showing demo data", "error", err, "kind", apperr.Classify(err))
			if err := sleep(ctx, a.failureDelay); err != nil {
				return nil, err
			}
		}
	} else if err := sleep(ctx, a.offlineDelay); err != nil {
		return nil, err
	}

	if source.IsDemo() {
		results = a.bench.GenerateBenchmark(a.catalog.Resolve(req.Algorithms), req.DatasetSize)
	}
	a.metrics.ObserveSource("analysis", source)

	run := domain.NewBenchmarkRun(req.Algorithms, req.DatasetSize, results, source)
	if a.store != nil {
		if err := a.store.Save(ctx, run); err != nil {
			slog.Error("Failed to save benchmark run", "id", run.ID, "error", err)
		}
	}

	return NewAnalysisView(run)
}

var ErrHistoryDisabled = errors.New("run history is not configured")

func (a *Analyzer) History(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.BenchmarkRun], error) {
	if a.store == nil {
		return nil, ErrHistoryDisabled
	}
	return a.store.List(ctx, page)
}

func (a *Analyzer) Get(ctx context.Context, id uuid.UUID) (*AnalysisView, error) {
	if a.store == nil {
		return nil, ErrHistoryDisabled
	}
	run, err := a.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewAnalysisView(run)
}
