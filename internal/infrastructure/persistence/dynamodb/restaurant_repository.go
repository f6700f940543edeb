package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"restaurant-knowledge/internal/domain/restaurant"
	"restaurant-knowledge/internal/repository"
)

// RestaurantRepository composes the generic repository with the
// restaurant codec and criteria translation. It is the only component
// that talks to the store.
type RestaurantRepository struct {
	*GenericRepository[restaurant.Record, restaurant.Key]
}

var _ repository.RestaurantRepository = (*RestaurantRepository)(nil)

// NewRestaurantRepository creates the store-backed restaurant repository.
func NewRestaurantRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) *RestaurantRepository {
	return &RestaurantRepository{
		GenericRepository: NewGenericRepository[restaurant.Record, restaurant.Key](
			client, tableName, RestaurantCodec{}, logger,
		),
	}
}

// Query translates the domain criteria for the owner's partition and
// runs it. Empty criteria are rejected before any store call.
func (r *RestaurantRepository) Query(ctx context.Context, ownerID string, criteria restaurant.QueryCriteria) ([]restaurant.Record, error) {
	return r.GenericRepository.Query(ctx, NewRestaurantCriteria(ownerID, criteria))
}
