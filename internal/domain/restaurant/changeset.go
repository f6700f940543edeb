package restaurant

import "strings"

// ChangeSet is the diff between a stored record and a partial update
// request. It is built once, consumed once (either as a merged record
// or as native update instructions) and then discarded.
type ChangeSet struct {
	base Record

	name        *string
	categories  []Category
	triedBefore *bool
	rating      *int
	review      *string
	notes       []string

	notesChanged    bool
	identityChanged bool
	empty           bool
}

// NewChangeSet computes the minimal set of field changes needed to turn
// base into the state requested by update. Fields the update leaves nil
// are untouched; requested values equal to the stored ones are dropped
// from the diff.
//
// A rating or review becoming set on an untried entry implies the entry
// has now been tried, so triedBefore is folded into the diff as true
// unless the update addresses it explicitly.
func NewChangeSet(base Record, update Update) ChangeSet {
	cs := ChangeSet{base: base, empty: true}

	if update.Name != nil && *update.Name != base.Name {
		cs.name = update.Name
		cs.empty = false
		cs.identityChanged = strings.ToLower(*update.Name) != base.Key().NameLowercase()
	}
	if update.TriedBefore != nil && *update.TriedBefore != base.TriedBefore {
		cs.triedBefore = update.TriedBefore
		cs.empty = false
	}
	if update.Review != nil && *update.Review != base.Review {
		cs.review = update.Review
		cs.empty = false
	}
	if update.Rating != nil && *update.Rating != base.Rating {
		cs.rating = update.Rating
		cs.empty = false
	}
	if update.Notes != nil {
		filtered := withoutBlankNotes(update.Notes)
		if !stringSlicesEqual(filtered, base.Notes) {
			cs.notes = filtered
			cs.notesChanged = true
			cs.empty = false
		}
	}
	if update.Categories != nil && !categoriesEqual(update.Categories, base.Categories) {
		cs.categories = update.Categories
		cs.empty = false
	}

	// A new rating or review on an untried entry marks it as tried.
	if cs.triedBefore == nil && update.TriedBefore == nil && !base.TriedBefore {
		ratingAppeared := cs.rating != nil && *cs.rating > 0
		reviewAppeared := cs.review != nil && strings.TrimSpace(*cs.review) != ""
		if ratingAppeared || reviewAppeared {
			tried := true
			cs.triedBefore = &tried
			cs.empty = false
		}
	}

	return cs
}

// Empty reports whether the update requested no effective change.
// Callers must treat an empty change set as a no-op, not an error.
func (c ChangeSet) Empty() bool {
	return c.empty
}

// IdentityChanged reports whether the requested name maps to a
// different key than the stored record's. Identity never changes in
// place: the caller re-creates the record under the new key and
// deletes the old one.
func (c ChangeSet) IdentityChanged() bool {
	return c.identityChanged
}

// BaseTriedBefore exposes the stored tried-before flag, needed when
// translating the diff to update instructions.
func (c ChangeSet) BaseTriedBefore() bool {
	return c.base.TriedBefore
}

// NameChange returns the new display name, if the diff carries one.
func (c ChangeSet) NameChange() (string, bool) {
	if c.name == nil {
		return "", false
	}
	return *c.name, true
}

// TriedBeforeChange returns the new tried-before flag, if the diff
// carries one.
func (c ChangeSet) TriedBeforeChange() (bool, bool) {
	if c.triedBefore == nil {
		return false, false
	}
	return *c.triedBefore, true
}

// RatingChange returns the new rating, if the diff carries one. Zero
// means "explicitly cleared".
func (c ChangeSet) RatingChange() (int, bool) {
	if c.rating == nil {
		return 0, false
	}
	return *c.rating, true
}

// ReviewChange returns the new review, if the diff carries one. An
// empty string means "explicitly cleared".
func (c ChangeSet) ReviewChange() (string, bool) {
	if c.review == nil {
		return "", false
	}
	return *c.review, true
}

// CategoriesChange returns the replacement category set, if the diff
// carries one.
func (c ChangeSet) CategoriesChange() ([]Category, bool) {
	if c.categories == nil {
		return nil, false
	}
	return c.categories, true
}

// NotesChange returns the replacement notes list, if the diff carries
// one. The returned slice may be empty, meaning the list is cleared.
func (c ChangeSet) NotesChange() ([]string, bool) {
	if !c.notesChanged {
		return nil, false
	}
	return c.notes, true
}

// Merged applies the diff on top of the base record and returns the
// resulting record. Clearing the tried-before flag also clears rating
// and review, mirroring what the update instructions write.
func (c ChangeSet) Merged() Record {
	merged := c.base
	if c.name != nil {
		merged.Name = *c.name
	}
	if c.categories != nil {
		merged.Categories = c.categories
	}
	if c.triedBefore != nil {
		merged.TriedBefore = *c.triedBefore
	}
	if c.rating != nil {
		merged.Rating = *c.rating
	}
	if c.review != nil {
		merged.Review = *c.review
	}
	if c.notesChanged {
		merged.Notes = c.notes
	}
	if c.triedBefore != nil && !*c.triedBefore {
		merged.Rating = 0
		merged.Review = ""
	}
	return merged
}

func withoutBlankNotes(notes []string) []string {
	filtered := make([]string, 0, len(notes))
	for _, note := range notes {
		if strings.TrimSpace(note) == "" {
			continue
		}
		filtered = append(filtered, note)
	}
	return filtered
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
