// Package mocks provides an in-memory implementation of the repository
// interfaces for testing.
package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"restaurant-knowledge/internal/domain/restaurant"
	"restaurant-knowledge/internal/repository"
)

// MockRestaurantRepository is an in-memory RestaurantRepository. It
// stores records keyed the way the real table does (owner plus
// lowercased name), supports per-method error injection, and records
// the order of mutating calls.
type MockRestaurantRepository struct {
	mu sync.RWMutex

	records map[restaurant.Key]restaurant.Record

	// shouldFailOn maps a method name to the error it returns.
	shouldFailOn map[string]error

	// Calls lists mutating operations in order, e.g. "Create:owner/name".
	Calls []string
}

var _ repository.RestaurantRepository = (*MockRestaurantRepository)(nil)

// NewMockRestaurantRepository creates an empty mock repository.
func NewMockRestaurantRepository() *MockRestaurantRepository {
	return &MockRestaurantRepository{
		records:      make(map[restaurant.Key]restaurant.Record),
		shouldFailOn: make(map[string]error),
	}
}

// SetError configures the mock to return err from the named method.
func (m *MockRestaurantRepository) SetError(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFailOn[method] = err
}

// Seed stores records directly, bypassing error injection.
func (m *MockRestaurantRepository) Seed(records ...restaurant.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, record := range records {
		m.records[record.Key()] = record
	}
}

// Len returns the number of stored records.
func (m *MockRestaurantRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

func (m *MockRestaurantRepository) FindByKey(ctx context.Context, key restaurant.Key) (restaurant.Record, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.shouldFailOn["FindByKey"]; err != nil {
		return restaurant.Record{}, false, err
	}
	record, found := m.records[key]
	return record, found, nil
}

func (m *MockRestaurantRepository) Query(ctx context.Context, ownerID string, criteria restaurant.QueryCriteria) ([]restaurant.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.shouldFailOn["Query"]; err != nil {
		return nil, err
	}
	if criteria.IsEmpty() {
		return nil, repository.NewInvalidQuery("at least one criterion is required")
	}

	var matched []restaurant.Record
	for key, record := range m.records {
		if key.OwnerID() != ownerID {
			continue
		}
		if matches(record, criteria) {
			matched = append(matched, record)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Key().NameLowercase() < matched[j].Key().NameLowercase()
	})
	return matched, nil
}

func (m *MockRestaurantRepository) Create(ctx context.Context, record restaurant.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "Create:"+record.Key().String())
	if err := m.shouldFailOn["Create"]; err != nil {
		return err
	}
	m.records[record.Key()] = record
	return nil
}

func (m *MockRestaurantRepository) Update(ctx context.Context, record restaurant.Record, instructions repository.UpdateInstructions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "Update:"+record.Key().String())
	if err := m.shouldFailOn["Update"]; err != nil {
		return err
	}
	// The real store rejects updates that touch primary-key attributes.
	for _, attr := range []string{repository.AttrUserID, repository.AttrNameLowercase} {
		if _, ok := instructions[attr]; ok {
			return fmt.Errorf("cannot update attribute %s: it is part of the key", attr)
		}
	}
	if instructions.IsEmpty() {
		return nil
	}
	base, found := m.records[record.Key()]
	if !found {
		base = record
	}
	m.records[record.Key()] = applyInstructions(base, instructions)
	return nil
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, record restaurant.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "Delete:"+record.Key().String())
	if err := m.shouldFailOn["Delete"]; err != nil {
		return err
	}
	delete(m.records, record.Key())
	return nil
}

func matches(record restaurant.Record, criteria restaurant.QueryCriteria) bool {
	if criteria.NameBeginsWith != "" &&
		!strings.HasPrefix(record.Key().NameLowercase(), strings.ToLower(criteria.NameBeginsWith)) {
		return false
	}
	if criteria.Category != "" && !containsCategory(record.Categories, criteria.Category) {
		return false
	}
	if criteria.TriedBefore != nil && record.TriedBefore != *criteria.TriedBefore {
		return false
	}
	// A tried=false filter makes a rating bound unsatisfiable; the real
	// translator drops it, and so does the mock.
	explicitlyUntried := criteria.TriedBefore != nil && !*criteria.TriedBefore
	if criteria.RatingAtLeast > 0 && !explicitlyUntried && record.Rating < criteria.RatingAtLeast {
		return false
	}
	return true
}

func containsCategory(categories []restaurant.Category, want restaurant.Category) bool {
	for _, c := range categories {
		if c == want {
			return true
		}
	}
	return false
}
