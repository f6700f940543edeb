// Package cache decorates the restaurant repository with a cache-aside
// read path and eviction on every mutation.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"restaurant-knowledge/internal/domain/restaurant"
	"restaurant-knowledge/internal/infrastructure/observability"
	"restaurant-knowledge/internal/repository"
)

// Cache abstracts the caching backend so different implementations
// (in-memory, Redis, Memcached) can sit behind the decorator.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, pattern string) error
}

// CachingConfig controls the decorator's behavior.
type CachingConfig struct {
	// TTL applies to cached records; zero or negative means entries
	// never expire and live until evicted.
	TTL time.Duration

	// KeyPrefix namespaces all cache keys.
	KeyPrefix string
}

// DefaultCachingConfig returns defaults that match a single-process
// deployment: unbounded entry lifetime, one shared namespace.
func DefaultCachingConfig() CachingConfig {
	return CachingConfig{
		TTL:       0,
		KeyPrefix: "restaurants:",
	}
}

// CachingRestaurantRepository is a decorator that adds cache-aside reads
// to a RestaurantRepository.
//
// Only FindByKey is cached: queries scan ranges of the table and their
// results go stale on any write, so they always pass through. Mutations
// delegate to the inner repository first and evict the affected key only
// after the store accepted the write, so a failed write never clears a
// still-valid entry. Lookup misses are not cached; an absent record costs
// a store round trip every time, which keeps create-after-miss correct.
type CachingRestaurantRepository struct {
	inner   repository.RestaurantRepository
	cache   Cache
	config  CachingConfig
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewCachingRestaurantRepository wraps inner with the caching decorator.
func NewCachingRestaurantRepository(
	inner repository.RestaurantRepository,
	cache Cache,
	config CachingConfig,
	metrics *observability.Collector,
	logger *zap.Logger,
) repository.RestaurantRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachingRestaurantRepository{
		inner:   inner,
		cache:   cache,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

// FindByKey serves lookups from the cache when possible and populates it
// on a miss that found a record.
func (r *CachingRestaurantRepository) FindByKey(ctx context.Context, key restaurant.Key) (restaurant.Record, bool, error) {
	cacheKey := r.recordKey(key)

	if data, hit, cacheErr := r.cache.Get(ctx, cacheKey); hit && cacheErr == nil {
		var record restaurant.Record
		if err := json.Unmarshal(data, &record); err == nil {
			r.countCacheHit()
			return record, true, nil
		}
		// Corrupt entry: drop it and fall through to the store.
		r.cache.Delete(ctx, cacheKey)
		r.logger.Warn("dropping undecodable cache entry", zap.String("key", cacheKey))
	}
	r.countCacheMiss()

	record, found, err := r.inner.FindByKey(ctx, key)
	r.observe("FindByKey", err)
	if err != nil || !found {
		return record, found, err
	}

	if data, marshalErr := json.Marshal(record); marshalErr == nil {
		if setErr := r.cache.Set(ctx, cacheKey, data, r.config.TTL); setErr != nil {
			r.logger.Warn("failed to cache record", zap.String("key", cacheKey), zap.Error(setErr))
		}
	}
	return record, true, nil
}

// Query always goes to the store; range results are not cached.
func (r *CachingRestaurantRepository) Query(ctx context.Context, ownerID string, criteria restaurant.QueryCriteria) ([]restaurant.Record, error) {
	records, err := r.inner.Query(ctx, ownerID, criteria)
	r.observe("Query", err)
	return records, err
}

// Create delegates to the store and evicts the record's key so a stale
// miss from a concurrent reader cannot outlive the write.
func (r *CachingRestaurantRepository) Create(ctx context.Context, record restaurant.Record) error {
	err := r.inner.Create(ctx, record)
	r.observe("Create", err)
	if err != nil {
		return err
	}
	r.evict(ctx, record.Key())
	return nil
}

// Update delegates to the store and evicts the record's key.
func (r *CachingRestaurantRepository) Update(ctx context.Context, record restaurant.Record, instructions repository.UpdateInstructions) error {
	err := r.inner.Update(ctx, record, instructions)
	r.observe("Update", err)
	if err != nil {
		return err
	}
	r.evict(ctx, record.Key())
	return nil
}

// Delete delegates to the store and evicts the record's key.
func (r *CachingRestaurantRepository) Delete(ctx context.Context, record restaurant.Record) error {
	err := r.inner.Delete(ctx, record)
	r.observe("Delete", err)
	if err != nil {
		return err
	}
	r.evict(ctx, record.Key())
	return nil
}

func (r *CachingRestaurantRepository) evict(ctx context.Context, key restaurant.Key) {
	cacheKey := r.recordKey(key)
	if err := r.cache.Delete(ctx, cacheKey); err != nil {
		r.logger.Warn("cache eviction failed", zap.String("key", cacheKey), zap.Error(err))
		return
	}
	if r.metrics != nil {
		r.metrics.CacheEvictions.Inc()
	}
}

func (r *CachingRestaurantRepository) recordKey(key restaurant.Key) string {
	return fmt.Sprintf("%s%s:%s", r.config.KeyPrefix, key.OwnerID(), key.NameLowercase())
}

func (r *CachingRestaurantRepository) observe(operation string, err error) {
	if r.metrics != nil {
		r.metrics.ObserveStoreOperation(operation, err)
	}
}

func (r *CachingRestaurantRepository) countCacheHit() {
	if r.metrics != nil {
		r.metrics.CacheHits.Inc()
	}
}

func (r *CachingRestaurantRepository) countCacheMiss() {
	if r.metrics != nil {
		r.metrics.CacheMisses.Inc()
	}
}
