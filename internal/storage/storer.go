package storage

import (
	"context"
	"errors"

	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/pkg/pagination"
	"github.com/google/uuid"
)

// RunStore keeps the history of benchmark runs. Runs are immutable once saved;
// List returns the newest first.
type RunStore interface {
	Save(ctx context.Context, run domain.BenchmarkRun) error
	Get(ctx context.Context, id uuid.UUID) (domain.BenchmarkRun, error)
	List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.BenchmarkRun], error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

var Types = []Type{ES, PG, InMem}

func (t Type) Valid() bool {
	for _, v := range Types {
		if t == v {
			return true
		}
	}
	return false
}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

var (
	ErrNotFound     = errors.New("benchmark run not found")
	ErrAlreadyExist = errors.New("benchmark run already exists")
)

// Offset converts a normalised page request to a row offset.
func Offset(page pagination.OffsetRequest) int {
	return (page.Page - 1) * page.Size
}
