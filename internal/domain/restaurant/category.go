package restaurant

import "sort"

// Category classifies a restaurant by the kind of food it serves.
// Stored as a member of the item's string-set attribute.
type Category string

const (
	CategoryAsian    Category = "ASIAN"
	CategoryBeer     Category = "BEER"
	CategoryBurger   Category = "BURGER"
	CategoryChicken  Category = "CHICKEN"
	CategoryFastFood Category = "FAST_FOOD"
	CategoryIndian   Category = "INDIAN"
	CategoryKebab    Category = "KEBAB"
	CategoryLunch    Category = "LUNCH"
	CategoryOther    Category = "OTHER"
	CategoryPasta    Category = "PASTA"
	CategoryPizza    Category = "PIZZA"
	CategoryRamen    Category = "RAMEN"
	CategorySandwich Category = "SANDWICH"
	CategorySushi    Category = "SUSHI"
	CategoryVegan    Category = "VEGAN"
)

var allCategories = map[Category]struct{}{
	CategoryAsian:    {},
	CategoryBeer:     {},
	CategoryBurger:   {},
	CategoryChicken:  {},
	CategoryFastFood: {},
	CategoryIndian:   {},
	CategoryKebab:    {},
	CategoryLunch:    {},
	CategoryOther:    {},
	CategoryPasta:    {},
	CategoryPizza:    {},
	CategoryRamen:    {},
	CategorySandwich: {},
	CategorySushi:    {},
	CategoryVegan:    {},
}

// ParseCategory converts a stored string value back to a Category.
func ParseCategory(value string) (Category, error) {
	category := Category(value)
	if !category.Valid() {
		return "", ValidationError{Field: "categories", Reason: "unknown category " + value}
	}
	return category, nil
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	_, ok := allCategories[c]
	return ok
}

// String returns the stored representation of the category.
func (c Category) String() string {
	return string(c)
}

// CategoryValues converts categories to their stored string values,
// deduplicated and sorted for deterministic output.
func CategoryValues(categories []Category) []string {
	seen := make(map[string]struct{}, len(categories))
	values := make([]string, 0, len(categories))
	for _, category := range categories {
		value := category.String()
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}

// categoriesEqual compares two category slices as sets.
func categoriesEqual(a, b []Category) bool {
	left, right := categorySet(a), categorySet(b)
	if len(left) != len(right) {
		return false
	}
	for category := range left {
		if _, ok := right[category]; !ok {
			return false
		}
	}
	return true
}

func categorySet(categories []Category) map[Category]struct{} {
	set := make(map[Category]struct{}, len(categories))
	for _, category := range categories {
		set[category] = struct{}{}
	}
	return set
}
