package repository

// Attribute names of the restaurant item in the underlying table.
// userId is the partition key and nameLowercase the sort key; the
// display-cased name is stored separately so renames that only change
// casing do not change identity.
const (
	AttrUserID         = "userId"
	AttrNameLowercase  = "nameLowercase"
	AttrRestaurantName = "restaurantName"
	AttrCategories     = "categories"
	AttrTriedBefore    = "triedBefore"
	AttrRating         = "rating"
	AttrReview         = "review"
	AttrNotes          = "notes"
)
