package restaurant

// QueryCriteria is a sparse filter over a user's restaurant entries.
// All fields are optional, but at least one must be set: an empty
// criteria would translate to a full-partition scan, which is rejected
// before any store call.
type QueryCriteria struct {
	// NameBeginsWith matches restaurant names by prefix, case-insensitively.
	NameBeginsWith string
	// Category matches entries whose category set contains the value.
	Category Category
	// TriedBefore is tri-state: nil means "either".
	TriedBefore *bool
	// RatingAtLeast is a minimum rating filter; zero means unset. The
	// filter only applies when TriedBefore is not explicitly false,
	// because untried entries never carry a rating.
	RatingAtLeast int
}

// IsEmpty reports whether no criteria fields are set.
func (c QueryCriteria) IsEmpty() bool {
	return c.NameBeginsWith == "" &&
		c.Category == "" &&
		c.TriedBefore == nil &&
		c.RatingAtLeast == 0
}
