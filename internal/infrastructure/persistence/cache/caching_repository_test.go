package cache

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-knowledge/internal/domain/restaurant"
	memorycache "restaurant-knowledge/internal/infrastructure/cache"
	"restaurant-knowledge/internal/infrastructure/observability"
	"restaurant-knowledge/internal/repository"
	"restaurant-knowledge/internal/repository/mocks"
)

func cachedRepoFixture(t *testing.T) (*mocks.MockRestaurantRepository, *memorycache.MemoryCache, repository.RestaurantRepository) {
	t.Helper()
	inner, _, memory, repo := instrumentedRepoFixture(t)
	return inner, memory, repo
}

func instrumentedRepoFixture(t *testing.T) (*mocks.MockRestaurantRepository, *observability.Collector, *memorycache.MemoryCache, repository.RestaurantRepository) {
	t.Helper()
	inner := mocks.NewMockRestaurantRepository()
	memory := memorycache.NewMemoryCache(100, 1024*1024, nil)
	metrics := observability.NewCollector("test")
	repo := NewCachingRestaurantRepository(inner, memory, DefaultCachingConfig(), metrics, nil)
	return inner, metrics, memory, repo
}

func testRecord(name string) restaurant.Record {
	return restaurant.Record{
		OwnerID:     "alice",
		Name:        name,
		Categories:  []restaurant.Category{restaurant.CategoryPizza},
		TriedBefore: true,
		Rating:      8,
	}
}

func TestCachingRepository_MissThenHit(t *testing.T) {
	ctx := context.Background()
	inner, _, repo := cachedRepoFixture(t)
	record := testRecord("Trattoria Roma")
	inner.Seed(record)

	got, found, err := repo.FindByKey(ctx, record.Key())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, record, got)

	// Second lookup is served from the cache, not the store.
	inner.SetError("FindByKey", assert.AnError)
	got, found, err = repo.FindByKey(ctx, record.Key())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, record, got)
}

func TestCachingRepository_NoNegativeCaching(t *testing.T) {
	ctx := context.Background()
	inner, _, repo := cachedRepoFixture(t)
	key, err := restaurant.NewKey("alice", "absent")
	require.NoError(t, err)

	_, found, err := repo.FindByKey(ctx, key)
	require.NoError(t, err)
	require.False(t, found)

	// The miss must not be cached: a record created afterwards has to
	// be visible immediately.
	record := testRecord("Absent")
	inner.Seed(record)

	got, found, err := repo.FindByKey(ctx, record.Key())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, record, got)
}

func TestCachingRepository_UpdateEvicts(t *testing.T) {
	ctx := context.Background()
	inner, _, repo := cachedRepoFixture(t)
	record := testRecord("Trattoria Roma")
	inner.Seed(record)

	_, _, err := repo.FindByKey(ctx, record.Key())
	require.NoError(t, err)

	instructions := repository.NewUpdate().SetNumber(repository.AttrRating, 3).Build()
	require.NoError(t, repo.Update(ctx, record, instructions))

	got, found, err := repo.FindByKey(ctx, record.Key())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, got.Rating, "stale cached rating must not survive the update")
}

func TestCachingRepository_DeleteEvicts(t *testing.T) {
	ctx := context.Background()
	inner, _, repo := cachedRepoFixture(t)
	record := testRecord("Trattoria Roma")
	inner.Seed(record)

	_, _, err := repo.FindByKey(ctx, record.Key())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, record))

	_, found, err := repo.FindByKey(ctx, record.Key())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCachingRepository_FailedUpdateKeepsCache(t *testing.T) {
	ctx := context.Background()
	inner, memory, repo := cachedRepoFixture(t)
	record := testRecord("Trattoria Roma")
	inner.Seed(record)

	_, _, err := repo.FindByKey(ctx, record.Key())
	require.NoError(t, err)

	inner.SetError("Update", assert.AnError)
	instructions := repository.NewUpdate().SetNumber(repository.AttrRating, 3).Build()
	require.Error(t, repo.Update(ctx, record, instructions))

	stats := memory.Stats()
	assert.Equal(t, 1, stats.Items, "failed write must not evict the still-valid entry")
}

func TestCachingRepository_CreateEvicts(t *testing.T) {
	ctx := context.Background()
	inner, memory, repo := cachedRepoFixture(t)
	record := testRecord("Trattoria Roma")
	inner.Seed(record)

	_, _, err := repo.FindByKey(ctx, record.Key())
	require.NoError(t, err)
	require.Equal(t, 1, memory.Stats().Items)

	replacement := record
	replacement.Rating = 2
	require.NoError(t, repo.Create(ctx, replacement))

	got, found, err := repo.FindByKey(ctx, record.Key())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, got.Rating)
}

func TestCachingRepository_RecordsStoreOperations(t *testing.T) {
	ctx := context.Background()
	inner, metrics, _, repo := instrumentedRepoFixture(t)
	record := testRecord("Trattoria Roma")
	inner.Seed(record)

	_, _, err := repo.FindByKey(ctx, record.Key())
	require.NoError(t, err)

	// Cached read: no second store operation.
	_, _, err = repo.FindByKey(ctx, record.Key())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, record))

	inner.SetError("Create", assert.AnError)
	require.Error(t, repo.Create(ctx, record))

	ops := metrics.StoreOperations
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("FindByKey", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("Delete", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("Create", "error")))
}

func TestCachingRepository_QueryPassesThrough(t *testing.T) {
	ctx := context.Background()
	inner, memory, repo := cachedRepoFixture(t)
	inner.Seed(testRecord("Trattoria Roma"))

	records, err := repo.Query(ctx, "alice", restaurant.QueryCriteria{Category: restaurant.CategoryPizza})
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 0, memory.Stats().Items, "query results are never cached")
}
