// Package knowledge implements the application service for per-user
// restaurant records: lookups, queries, creation, partial updates with
// rename support, and narrow single-field setters.
package knowledge

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"restaurant-knowledge/internal/domain/restaurant"
	"restaurant-knowledge/internal/repository"
)

const resourceName = "restaurant"

// Service orchestrates restaurant record operations on top of a
// RestaurantRepository. All operations take the owner explicitly; a
// blank owner is rejected before the store is touched.
type Service struct {
	repo   repository.RestaurantRepository
	logger *zap.Logger
}

// NewService creates a Service backed by repo.
func NewService(repo repository.RestaurantRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Fetch returns the owner's record stored under the given name. Lookup
// is case-insensitive in the name. The boolean reports whether a record
// was found.
func (s *Service) Fetch(ctx context.Context, ownerID, name string) (restaurant.Record, bool, error) {
	key, err := restaurant.NewKey(ownerID, name)
	if err != nil {
		return restaurant.Record{}, false, err
	}
	s.logger.Debug("fetching restaurant", zap.String("key", key.String()))
	return s.repo.FindByKey(ctx, key)
}

// Query returns the owner's records matching the given criteria. At
// least one criterion must be set; unbounded scans over an owner's
// records are rejected.
func (s *Service) Query(ctx context.Context, ownerID string, criteria restaurant.QueryCriteria) ([]restaurant.Record, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, restaurant.IdentityMissingError{}
	}
	s.logger.Debug("querying restaurants", zap.String("owner", ownerID))
	return s.repo.Query(ctx, ownerID, criteria)
}

// Create stores a new record. A rating or review on the incoming record
// marks it as tried regardless of the TriedBefore flag, since both only
// make sense after a visit. Creating over an existing name (compared
// case-insensitively) fails with an already-exists error.
func (s *Service) Create(ctx context.Context, record restaurant.Record) (restaurant.Record, error) {
	if record.HasRating() || record.HasReview() {
		record.TriedBefore = true
	}
	if !record.TriedBefore {
		record.Rating = 0
		record.Review = ""
	}
	record.Notes = trimBlankNotes(record.Notes)

	if err := record.Validate(); err != nil {
		return restaurant.Record{}, err
	}
	key := record.Key()

	_, found, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return restaurant.Record{}, err
	}
	if found {
		return restaurant.Record{}, repository.NewAlreadyExists(resourceName, key.String())
	}

	s.logger.Debug("creating restaurant", zap.String("key", key.String()))
	if err := s.repo.Create(ctx, record); err != nil {
		return restaurant.Record{}, err
	}
	return record, nil
}

// Update applies a partial update to the owner's record stored under
// name and returns the record as it now exists in the store.
//
// Fields left nil in the update keep their stored values; pointers to
// zero values clear them. Marking a record untried also clears its
// rating and review. Changing the name's lowercase form moves the
// record: the merged record is written under the new key first and the
// old key is deleted after, so a crash in between leaves both copies
// rather than neither. An update that changes nothing fails with a
// no-changes error.
func (s *Service) Update(ctx context.Context, ownerID, name string, update restaurant.Update) (restaurant.Record, error) {
	key, err := restaurant.NewKey(ownerID, name)
	if err != nil {
		return restaurant.Record{}, err
	}

	base, found, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return restaurant.Record{}, err
	}
	if !found {
		return restaurant.Record{}, repository.NewNotFound(resourceName, key.String())
	}
	return s.applyUpdate(ctx, base, update)
}

// Delete removes the owner's record stored under name. Deleting a
// record that does not exist fails with a not-found error.
func (s *Service) Delete(ctx context.Context, ownerID, name string) error {
	key, err := restaurant.NewKey(ownerID, name)
	if err != nil {
		return err
	}

	record, found, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		return repository.NewNotFound(resourceName, key.String())
	}

	s.logger.Debug("deleting restaurant", zap.String("key", key.String()))
	return s.repo.Delete(ctx, record)
}

// SetRating sets the record's rating. A rating of zero clears it. A
// positive rating on an untried record also marks it as tried.
func (s *Service) SetRating(ctx context.Context, ownerID, name string, rating int) (restaurant.Record, error) {
	return s.setField(ctx, ownerID, name,
		func(base restaurant.Record) bool { return base.Rating == rating },
		restaurant.Update{Rating: &rating})
}

// SetReview sets the record's review text. A blank review clears it. A
// non-blank review on an untried record also marks it as tried.
func (s *Service) SetReview(ctx context.Context, ownerID, name string, review string) (restaurant.Record, error) {
	return s.setField(ctx, ownerID, name,
		func(base restaurant.Record) bool { return base.Review == review },
		restaurant.Update{Review: &review})
}

// SetTriedBefore sets the tried-before flag. Marking a record untried
// also clears its rating and review.
func (s *Service) SetTriedBefore(ctx context.Context, ownerID, name string, tried bool) (restaurant.Record, error) {
	return s.setField(ctx, ownerID, name,
		func(base restaurant.Record) bool { return base.TriedBefore == tried },
		restaurant.Update{TriedBefore: &tried})
}

// ReplaceCategories replaces the record's category set. Order does not
// matter; replacing with the same set fails with a no-changes error.
func (s *Service) ReplaceCategories(ctx context.Context, ownerID, name string, categories []restaurant.Category) (restaurant.Record, error) {
	return s.setField(ctx, ownerID, name,
		func(restaurant.Record) bool { return false },
		restaurant.Update{Categories: categories})
}

// ReplaceNotes replaces the record's notes list. Blank notes are
// dropped before comparison and storage.
func (s *Service) ReplaceNotes(ctx context.Context, ownerID, name string, notes []string) (restaurant.Record, error) {
	return s.setField(ctx, ownerID, name,
		func(restaurant.Record) bool { return false },
		restaurant.Update{Notes: notes})
}

// setField is the shared narrow-setter path: fetch, short-circuit when
// the store already matches, then run the regular update flow.
func (s *Service) setField(ctx context.Context, ownerID, name string, unchanged func(restaurant.Record) bool, update restaurant.Update) (restaurant.Record, error) {
	key, err := restaurant.NewKey(ownerID, name)
	if err != nil {
		return restaurant.Record{}, err
	}

	base, found, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return restaurant.Record{}, err
	}
	if !found {
		return restaurant.Record{}, repository.NewNotFound(resourceName, key.String())
	}
	if unchanged(base) {
		return restaurant.Record{}, repository.NewNoChanges(resourceName, key.String())
	}
	return s.applyUpdate(ctx, base, update)
}

func (s *Service) applyUpdate(ctx context.Context, base restaurant.Record, update restaurant.Update) (restaurant.Record, error) {
	changes := restaurant.NewChangeSet(base, update)
	if changes.Empty() {
		return restaurant.Record{}, repository.NewNoChanges(resourceName, base.Key().String())
	}

	merged := changes.Merged()
	if err := merged.Validate(); err != nil {
		return restaurant.Record{}, err
	}

	if changes.IdentityChanged() {
		return s.rename(ctx, base, merged)
	}

	s.logger.Debug("updating restaurant",
		zap.String("key", base.Key().String()))
	if err := s.repo.Update(ctx, base, repository.ChangeInstructions(changes)); err != nil {
		return restaurant.Record{}, err
	}
	return merged, nil
}

// rename moves a record to a new key. The copy is written before the
// old record is deleted; the two store calls are not atomic.
func (s *Service) rename(ctx context.Context, base, merged restaurant.Record) (restaurant.Record, error) {
	newKey := merged.Key()

	_, found, err := s.repo.FindByKey(ctx, newKey)
	if err != nil {
		return restaurant.Record{}, err
	}
	if found {
		return restaurant.Record{}, repository.NewAlreadyExists(resourceName, newKey.String())
	}

	s.logger.Debug("renaming restaurant",
		zap.String("from", base.Key().String()),
		zap.String("to", newKey.String()))
	if err := s.repo.Create(ctx, merged); err != nil {
		return restaurant.Record{}, err
	}
	if err := s.repo.Delete(ctx, base); err != nil {
		return restaurant.Record{}, err
	}
	return merged, nil
}

func trimBlankNotes(notes []string) []string {
	if len(notes) == 0 {
		return notes
	}
	kept := make([]string, 0, len(notes))
	for _, note := range notes {
		if strings.TrimSpace(note) != "" {
			kept = append(kept, note)
		}
	}
	return kept
}
