package restaurant

// Update is a partial update request against a stored record. Nil
// pointer fields (and nil slices) mean "leave the stored value alone";
// a pointer to the zero value is an explicit clear. This convention is
// uniform across all fields - callers that want to clear the rating
// send a pointer to 0, callers that want to keep it send nil.
type Update struct {
	Name        *string
	Categories  []Category
	TriedBefore *bool
	Rating      *int
	Review      *string
	// Notes replaces the whole list when non-nil; an empty non-nil
	// slice clears it.
	Notes []string
}

// IsZero reports whether the update requests nothing at all.
func (u Update) IsZero() bool {
	return u.Name == nil &&
		u.Categories == nil &&
		u.TriedBefore == nil &&
		u.Rating == nil &&
		u.Review == nil &&
		u.Notes == nil
}
