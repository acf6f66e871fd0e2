package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/green-bench/internal/storage"
	"github.com/DjordjeVuckovic/green-bench/internal/storage/es"
	"github.com/DjordjeVuckovic/green-bench/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/green-bench/internal/storage/pg"
	"github.com/DjordjeVuckovic/green-bench/pkg/server"
)

// Store bundles a run store with its health check and release hook.
type Store struct {
	storage.RunStore
	Health server.HealthChecker
	Close  func()
}

func NewRunStore(ctx context.Context, cfg StorageConfig) (*Store, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return &Store{
			RunStore: pg.NewRunStore(pool),
			Health:   pg.NewHealthChecker(pool),
			Close:    pool.Close,
		}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		s, err := es.NewRunStore(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Store{RunStore: s, Health: s, Close: func() {}}, nil

	case storage.InMem:
		return &Store{
			RunStore: in_mem.NewRunStore(),
			Health:   server.NewOkHealthChecker(),
			Close:    func() {},
		}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
