// Package di wires the application's components together.
package di

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"restaurant-knowledge/internal/config"
	"restaurant-knowledge/internal/infrastructure/cache"
	"restaurant-knowledge/internal/infrastructure/observability"
	persistencecache "restaurant-knowledge/internal/infrastructure/persistence/cache"
	dynamodbrepo "restaurant-knowledge/internal/infrastructure/persistence/dynamodb"
	"restaurant-knowledge/internal/repository"
	"restaurant-knowledge/internal/service/knowledge"
)

// Container holds the application's wired components.
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *observability.Collector
	Repo    repository.RestaurantRepository
	Service *knowledge.Service
}

// NewContainer builds the full dependency graph from configuration:
// DynamoDB client, restaurant repository, the caching decorator when
// enabled, and the knowledge service on top.
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := dynamodbrepo.NewClient(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb client: %w", err)
	}

	metrics := observability.NewCollector("restaurant_knowledge")

	var repo repository.RestaurantRepository = dynamodbrepo.NewRestaurantRepository(client, cfg.TableName, logger)
	if cfg.Cache.Enabled {
		memory := cache.NewMemoryCache(cfg.Cache.MaxItems, cfg.Cache.MaxBytes, logger)
		cachingConfig := persistencecache.DefaultCachingConfig()
		cachingConfig.TTL = cfg.Cache.TTL
		repo = persistencecache.NewCachingRestaurantRepository(repo, memory, cachingConfig, metrics, logger)
	}

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
		Repo:    repo,
		Service: knowledge.NewService(repo, logger),
	}, nil
}
