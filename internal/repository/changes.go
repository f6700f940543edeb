package repository

import (
	"restaurant-knowledge/internal/domain/restaurant"
)

// Rating and review have no typed null in the store: clearing them as a
// side effect of un-trying an entry writes these sentinels, which the
// codec normalizes back to "absent" on read.
const (
	EmptyRating = 0
	EmptyReview = ""
)

// ChangeInstructions translates a change set into native update
// instructions for an in-place item update.
//
// The tried-before flag cascades: flipping it to false clears rating
// and review no matter what else the update asked for. Rating and
// review writes are only emitted for entries that are (or remain)
// tried. Explicit clears of rating or review are delete-instructions;
// the cascade uses sentinel writes so a concurrent reader never sees a
// tried=false entry with a half-removed rating.
//
// Key attributes are never emitted: the store rejects updates that
// touch the primary key. An in-place name change can only be a casing
// change, which leaves the lowercased sort key as it is; renames that
// move the key go through create-and-delete instead.
func ChangeInstructions(changes restaurant.ChangeSet) UpdateInstructions {
	b := NewUpdate()

	if name, ok := changes.NameChange(); ok {
		b.SetString(AttrRestaurantName, name)
	}

	tried, triedChanged := changes.TriedBeforeChange()
	switch {
	case triedChanged && !tried:
		b.SetNumber(AttrRating, EmptyRating)
		b.SetString(AttrReview, EmptyReview)
	case (triedChanged && tried) || changes.BaseTriedBefore():
		if rating, ok := changes.RatingChange(); ok {
			if rating == EmptyRating {
				b.Delete(AttrRating)
			} else {
				b.SetNumber(AttrRating, rating)
			}
		}
		if review, ok := changes.ReviewChange(); ok {
			if review == EmptyReview {
				b.Delete(AttrReview)
			} else {
				b.SetString(AttrReview, review)
			}
		}
	}
	if triedChanged {
		b.SetBool(AttrTriedBefore, tried)
	}

	if categories, ok := changes.CategoriesChange(); ok {
		b.SetStringSet(AttrCategories, restaurant.CategoryValues(categories))
	}
	if notes, ok := changes.NotesChange(); ok {
		b.SetStringList(AttrNotes, notes)
	}

	return b.Build()
}
