package in_mem

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/internal/storage"
	"github.com/DjordjeVuckovic/green-bench/pkg/pagination"
	"github.com/google/uuid"
)

type RunStore struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.BenchmarkRun
}

func NewRunStore() *RunStore {
	return &RunStore{
		storage: make(map[uuid.UUID]domain.BenchmarkRun),
	}
}

func (s *RunStore) Save(_ context.Context, run domain.BenchmarkRun) error {
	if run.ID == uuid.Nil {
		return fmt.Errorf("save run: missing id")
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, ok := s.storage[run.ID]; ok {
		return fmt.Errorf("save run %s: %w", run.ID, storage.ErrAlreadyExist)
	}
	s.storage[run.ID] = clone(run)
	slog.Debug("Saved benchmark run in memory", "id", run.ID, "results", len(run.Results))
	return nil
}

func (s *RunStore) Get(_ context.Context, id uuid.UUID) (domain.BenchmarkRun, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	run, ok := s.storage[id]
	if !ok {
		return domain.BenchmarkRun{}, storage.ErrNotFound
	}
	return clone(run), nil
}

func (s *RunStore) List(_ context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.BenchmarkRun], error) {
	_ = page.Validate()

	s.storageLock.RLock()
	runs := make([]domain.BenchmarkRun, 0, len(s.storage))
	for _, r := range s.storage {
		runs = append(runs, r)
	}
	s.storageLock.RUnlock()

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].ID.String() > runs[j].ID.String()
		}
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})

	total := int64(len(runs))
	from := min(storage.Offset(page), len(runs))
	to := min(from+page.Size, len(runs))

	items := make([]domain.BenchmarkRun, 0, to-from)
	for _, r := range runs[from:to] {
		items = append(items, clone(r))
	}
	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}

// clone keeps stored runs immutable from the caller's side.
func clone(run domain.BenchmarkRun) domain.BenchmarkRun {
	out := run
	out.Algorithms = append([]string(nil), run.Algorithms...)
	out.Results = append([]domain.BenchmarkResult(nil), run.Results...)
	return out
}
