// Package dynamodb implements the repository boundary on top of a
// DynamoDB-compatible attribute store. A single generic repository
// carries all CRUD and query mechanics; entity specifics (attribute
// codec, criteria translation) plug in through small interfaces.
package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"restaurant-knowledge/internal/repository"
)

// Keyed is an entity that knows its own store key.
type Keyed[K comparable] interface {
	Key() K
}

// ItemCodec converts between an entity type and its native attribute
// representation.
type ItemCodec[T Keyed[K], K comparable] interface {
	ToAttributes(item T) (map[string]types.AttributeValue, error)
	FromAttributes(item map[string]types.AttributeValue) (T, error)
	KeyAttributes(key K) map[string]types.AttributeValue
}

// CriteriaTranslator converts a domain query into the store's key
// condition and filter condition pair.
type CriteriaTranslator interface {
	// IsEmpty reports whether the query carries no criteria at all.
	// Empty queries are rejected before any store call.
	IsEmpty() bool
	// KeyCondition returns the partition (and optional sort-key
	// prefix) condition.
	KeyCondition() expression.KeyConditionBuilder
	// Filter returns the post-read filter condition, if any.
	Filter() (expression.ConditionBuilder, bool)
}

// GenericRepository provides the store operations shared by every
// entity type: single-item lookup, filtered range query, unconditional
// put, self-describing partial update, and delete. Transient store
// failures are wrapped for context and propagate to the caller; this
// layer never retries.
type GenericRepository[T Keyed[K], K comparable] struct {
	client    *dynamodb.Client
	tableName string
	codec     ItemCodec[T, K]
	logger    *zap.Logger
}

// NewGenericRepository creates a repository over one table.
func NewGenericRepository[T Keyed[K], K comparable](
	client *dynamodb.Client,
	tableName string,
	codec ItemCodec[T, K],
	logger *zap.Logger,
) *GenericRepository[T, K] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenericRepository[T, K]{
		client:    client,
		tableName: tableName,
		codec:     codec,
		logger:    logger,
	}
}

// FindByKey retrieves a single item. A missing item is reported through
// the found flag, not an error.
func (r *GenericRepository[T, K]) FindByKey(ctx context.Context, key K) (T, bool, error) {
	var zero T

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.codec.KeyAttributes(key),
	})
	if err != nil {
		return zero, false, wrapStoreError("GetItem", err)
	}
	if len(out.Item) == 0 {
		return zero, false, nil
	}

	item, err := r.codec.FromAttributes(out.Item)
	if err != nil {
		return zero, false, fmt.Errorf("failed to decode item: %w", err)
	}
	return item, true, nil
}

// Query returns all items matching the translated criteria, following
// result pagination to exhaustion. Ordering is the store's sort-key
// order. Items that fail to decode are skipped with a warning rather
// than poisoning the whole result.
func (r *GenericRepository[T, K]) Query(ctx context.Context, criteria CriteriaTranslator) ([]T, error) {
	if criteria.IsEmpty() {
		return nil, repository.NewInvalidQuery("criteria cannot be empty")
	}

	builder := expression.NewBuilder().WithKeyCondition(criteria.KeyCondition())
	filter, hasFilter := criteria.Filter()
	if hasFilter {
		builder = builder.WithFilter(filter)
	}
	expr, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
	if hasFilter {
		input.FilterExpression = expr.Filter()
	}

	var items []T
	paginator := dynamodb.NewQueryPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapStoreError("Query", err)
		}
		for _, raw := range page.Items {
			item, err := r.codec.FromAttributes(raw)
			if err != nil {
				r.logger.Warn("Skipping undecodable item", zap.Error(err))
				continue
			}
			items = append(items, item)
		}
	}
	return items, nil
}

// Create writes the full item unconditionally. An existing item under
// the same key is silently overwritten.
func (r *GenericRepository[T, K]) Create(ctx context.Context, item T) error {
	attributes, err := r.codec.ToAttributes(item)
	if err != nil {
		return fmt.Errorf("failed to encode item: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      attributes,
	})
	if err != nil {
		return wrapStoreError("PutItem", err)
	}
	return nil
}

// Update applies partial update instructions to the item under the
// entity's key. The instructions are self-describing (put vs delete),
// so no read precedes the write. An empty instruction set is a no-op.
func (r *GenericRepository[T, K]) Update(ctx context.Context, item T, updates repository.UpdateInstructions) error {
	if updates.IsEmpty() {
		return nil
	}

	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              r.codec.KeyAttributes(item.Key()),
		AttributeUpdates: updates,
	})
	if err != nil {
		return wrapStoreError("UpdateItem", err)
	}
	return nil
}

// Delete removes the item under the entity's key.
func (r *GenericRepository[T, K]) Delete(ctx context.Context, item T) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.codec.KeyAttributes(item.Key()),
	})
	if err != nil {
		return wrapStoreError("DeleteItem", err)
	}
	return nil
}

// wrapStoreError adds the failing operation and, when available, the
// service error code to a store failure.
func wrapStoreError(operation string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("dynamodb %s failed (%s): %w", operation, apiErr.ErrorCode(), err)
	}
	return fmt.Errorf("dynamodb %s failed: %w", operation, err)
}
