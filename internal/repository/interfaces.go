// Package repository defines the persistence boundary of the restaurant
// knowledge core: the repository interface the service layer programs
// against, the typed errors that cross it, and the native update
// instruction vocabulary shared with the store implementation.
package repository

import (
	"context"

	"restaurant-knowledge/internal/domain/restaurant"
)

// RestaurantRepository is the single component that talks to the
// underlying attribute store. All operations are synchronous; transient
// store failures propagate unwrapped in meaning (no retries here).
type RestaurantRepository interface {
	// FindByKey looks up a single record. Absence is not an error:
	// found is false and err is nil when the key has no item.
	FindByKey(ctx context.Context, key restaurant.Key) (record restaurant.Record, found bool, err error)

	// Query returns the owner's records matching the criteria. Empty
	// criteria fail with ErrInvalidQuery before any store call.
	Query(ctx context.Context, ownerID string, criteria restaurant.QueryCriteria) ([]restaurant.Record, error)

	// Create writes the record unconditionally, silently overwriting
	// an item under the same key. Uniqueness pre-checks belong to the
	// service layer.
	Create(ctx context.Context, record restaurant.Record) error

	// Update applies self-describing partial update instructions to
	// the item under the record's key.
	Update(ctx context.Context, record restaurant.Record, updates UpdateInstructions) error

	// Delete removes the item under the record's key.
	Delete(ctx context.Context, record restaurant.Record) error
}
