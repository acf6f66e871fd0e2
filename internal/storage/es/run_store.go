package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/internal/storage"
	"github.com/DjordjeVuckovic/green-bench/pkg/pagination"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type RunStore struct {
	client    *elasticsearch.TypedClient
	indexName string
}

// Document is the indexed form of a benchmark run. Results are stored but not
// indexed.
type Document struct {
	ID          string                   `json:"id"`
	Algorithms  []string                 `json:"algorithms"`
	DatasetSize int                      `json:"dataset_size"`
	Source      string                   `json:"source"`
	Results     []domain.BenchmarkResult `json:"results"`
	CreatedAt   time.Time                `json:"created_at"`
}

func NewRunStore(ctx context.Context, config ClientConfig) (*RunStore, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	s := &RunStore{
		client:    client,
		indexName: config.IndexName,
	}
	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}
	return s, nil
}

func (s *RunStore) Save(ctx context.Context, run domain.BenchmarkRun) error {
	doc := toDocument(run)

	res, err := s.client.Create(s.indexName, doc.ID).
		Document(doc).
		Refresh(refresh.Waitfor).
		Do(ctx)
	if err != nil {
		if isConflict(err) {
			return fmt.Errorf("save run %s: %w", run.ID, storage.ErrAlreadyExist)
		}
		return fmt.Errorf("failed to index benchmark run: %w", err)
	}

	slog.Debug("Benchmark run indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return nil
}

func (s *RunStore) Get(ctx context.Context, id uuid.UUID) (domain.BenchmarkRun, error) {
	res, err := s.client.Get(s.indexName, id.String()).Do(ctx)
	if err != nil {
		if isNotFound(err) {
			return domain.BenchmarkRun{}, storage.ErrNotFound
		}
		return domain.BenchmarkRun{}, fmt.Errorf("failed to get benchmark run: %w", err)
	}
	if !res.Found {
		return domain.BenchmarkRun{}, storage.ErrNotFound
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return domain.BenchmarkRun{}, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return doc.toDomain()
}

func (s *RunStore) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.BenchmarkRun], error) {
	_ = page.Validate()

	sortOrderDesc := sortorder.Desc
	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		From(storage.Offset(page)).
		Size(page.Size).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &sortOrderDesc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &sortOrderDesc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search benchmark runs: %w", err)
	}

	items := make([]domain.BenchmarkRun, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		run, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, run)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}
	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}

func (s *RunStore) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	disabled := false
	results := types.NewObjectProperty()
	results.Enabled = &disabled

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":           types.NewKeywordProperty(),
			"algorithms":   types.NewKeywordProperty(),
			"dataset_size": types.NewIntegerNumberProperty(),
			"source":       types.NewKeywordProperty(),
			"results":      results,
			"created_at":   types.NewDateProperty(),
		},
	}

	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}

// Healthy reports whether the cluster answers a ping.
func (s *RunStore) Healthy(ctx context.Context) bool {
	ok, err := s.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("Run history cluster is unreachable", "error", err)
		return false
	}
	return ok
}

func toDocument(run domain.BenchmarkRun) Document {
	return Document{
		ID:          run.ID.String(),
		Algorithms:  run.Algorithms,
		DatasetSize: run.DatasetSize,
		Source:      string(run.Source),
		Results:     run.Results,
		CreatedAt:   run.CreatedAt,
	}
}

func (d Document) toDomain() (domain.BenchmarkRun, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.BenchmarkRun{}, fmt.Errorf("failed to parse run id %q: %w", d.ID, err)
	}
	return domain.BenchmarkRun{
		ID:          id,
		Algorithms:  d.Algorithms,
		DatasetSize: d.DatasetSize,
		Results:     d.Results,
		Source:      domain.Source(d.Source),
		CreatedAt:   d.CreatedAt.UTC(),
	}, nil
}
