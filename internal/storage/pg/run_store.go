package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/internal/storage"
	"github.com/DjordjeVuckovic/green-bench/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type RunStore struct {
	db *pgxpool.Pool
}

func NewRunStore(pool *ConnectionPool) *RunStore {
	return &RunStore{db: pool.conn}
}

func (s *RunStore) Save(ctx context.Context, run domain.BenchmarkRun) error {
	results, err := json.Marshal(run.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	cmd := `
		INSERT INTO benchmark_runs (id, algorithms, dataset_size, source, results, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = s.db.Exec(ctx, cmd,
		run.ID,
		run.Algorithms,
		run.DatasetSize,
		string(run.Source),
		results,
		run.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("save run %s: %w", run.ID, storage.ErrAlreadyExist)
		}
		return fmt.Errorf("failed to insert benchmark run: %w", err)
	}
	return nil
}

func (s *RunStore) Get(ctx context.Context, id uuid.UUID) (domain.BenchmarkRun, error) {
	query := `
		SELECT id, algorithms, dataset_size, source, results, created_at
		FROM benchmark_runs
		WHERE id = $1
	`
	run, err := scanRun(s.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.BenchmarkRun{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.BenchmarkRun{}, fmt.Errorf("failed to load benchmark run: %w", err)
	}
	return run, nil
}

func (s *RunStore) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.BenchmarkRun], error) {
	_ = page.Validate()

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM benchmark_runs`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count benchmark runs: %w", err)
	}

	query := `
		SELECT id, algorithms, dataset_size, source, results, created_at
		FROM benchmark_runs
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.Query(ctx, query, page.Size, storage.Offset(page))
	if err != nil {
		return nil, fmt.Errorf("failed to list benchmark runs: %w", err)
	}
	defer rows.Close()

	items := make([]domain.BenchmarkRun, 0, page.Size)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan benchmark run: %w", err)
		}
		items = append(items, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate benchmark runs: %w", err)
	}

	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}

func scanRun(row pgx.Row) (domain.BenchmarkRun, error) {
	var (
		run     domain.BenchmarkRun
		source  string
		results []byte
	)
	if err := row.Scan(&run.ID, &run.Algorithms, &run.DatasetSize, &source, &results, &run.CreatedAt); err != nil {
		return domain.BenchmarkRun{}, err
	}
	if err := json.Unmarshal(results, &run.Results); err != nil {
		return domain.BenchmarkRun{}, fmt.Errorf("failed to unmarshal results: %w", err)
	}
	run.Source = domain.Source(source)
	run.CreatedAt = run.CreatedAt.UTC()
	return run, nil
}
