//go:build integration

package pg

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/internal/storage"
	"github.com/DjordjeVuckovic/green-bench/pkg/pagination"
	pkgtesting "github.com/DjordjeVuckovic/green-bench/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

var (
	testCtx   context.Context
	testPool  *ConnectionPool
	testStore *RunStore
)

func TestMain(m *testing.M) {
	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "green_bench_test",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		panic(err)
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		_ = testcontainers.TerminateContainer(pg.Container)
		panic(err)
	}
	testStore = NewRunStore(testPool)

	code := m.Run()

	testPool.Close()
	_ = testcontainers.TerminateContainer(pg.Container)
	os.Exit(code)
}

func truncateTable(t *testing.T) {
	t.Helper()
	_, err := testPool.conn.Exec(testCtx, "TRUNCATE TABLE benchmark_runs")
	require.NoError(t, err)
}

func sampleRun(createdAt time.Time) domain.BenchmarkRun {
	run := domain.NewBenchmarkRun([]string{"merge_sort", "heap_sort"}, 2000, []domain.BenchmarkResult{
		{Algorithm: "Merge Sort", Complexity: "O(n log n)", TimeSec: 0.0098, EnergyJoules: 0.0018, CO2Grams: 0.0085},
		{Algorithm: "Heap Sort", Complexity: "O(n log n)", TimeSec: 0.0112, EnergyJoules: 0.0014, CO2Grams: 0.0066},
	}, domain.SourceLive)
	run.CreatedAt = createdAt.UTC().Truncate(time.Microsecond)
	return run
}

func TestRunStore_SaveAndGet(t *testing.T) {
	truncateTable(t)
	run := sampleRun(time.Now())

	require.NoError(t, testStore.Save(testCtx, run))

	got, err := testStore.Get(testCtx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, run.Algorithms, got.Algorithms)
	assert.Equal(t, run.Results, got.Results)
	assert.Equal(t, domain.SourceLive, got.Source)
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt))

	assert.ErrorIs(t, testStore.Save(testCtx, run), storage.ErrAlreadyExist)
}

func TestRunStore_GetMissing(t *testing.T) {
	truncateTable(t)
	_, err := testStore.Get(testCtx, uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRunStore_List(t *testing.T) {
	truncateTable(t)
	base := time.Date(2026, 2, 2, 14, 30, 0, 0, time.UTC)

	var newest uuid.UUID
	for i := 0; i < 3; i++ {
		run := sampleRun(base.Add(time.Duration(i) * time.Hour))
		newest = run.ID
		require.NoError(t, testStore.Save(testCtx, run))
	}

	page, err := testStore.List(testCtx, pagination.OffsetRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.True(t, page.HasMore)
	require.Len(t, page.Items, 2)
	assert.Equal(t, newest, page.Items[0].ID)
}

func TestHealthChecker(t *testing.T) {
	assert.True(t, NewHealthChecker(testPool).Healthy(testCtx))
	assert.False(t, NewHealthChecker(nil).Healthy(testCtx))
}
