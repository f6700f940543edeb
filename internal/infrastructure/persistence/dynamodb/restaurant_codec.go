package dynamodb

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"restaurant-knowledge/internal/domain/restaurant"
	"restaurant-knowledge/internal/repository"
)

// RestaurantCodec converts between restaurant records and their native
// attribute representation.
//
// Writing: absent and default values are omitted from the item; the
// store has no typed null. Reading: a missing boolean is false, a
// missing or zero rating is absent (zero is the sentinel the cascading
// clear writes), and a blank review is absent.
type RestaurantCodec struct{}

// ToAttributes builds the full item for a record.
func (RestaurantCodec) ToAttributes(record restaurant.Record) (map[string]types.AttributeValue, error) {
	item := map[string]types.AttributeValue{
		repository.AttrUserID:         StringAttr(record.OwnerID),
		repository.AttrNameLowercase:  StringAttr(strings.ToLower(record.Name)),
		repository.AttrRestaurantName: StringAttr(record.Name),
	}
	if record.TriedBefore {
		item[repository.AttrTriedBefore] = BoolAttr(true)
	}
	if record.HasRating() {
		item[repository.AttrRating] = NumberAttr(record.Rating)
	}
	if record.HasReview() {
		item[repository.AttrReview] = StringAttr(record.Review)
	}
	if set := StringSetAttr(restaurant.CategoryValues(record.Categories)); set != nil {
		item[repository.AttrCategories] = set
	}
	if len(record.Notes) > 0 {
		notes, err := StringListAttr(record.Notes)
		if err != nil {
			return nil, fmt.Errorf("failed to encode notes: %w", err)
		}
		item[repository.AttrNotes] = notes
	}
	return item, nil
}

// FromAttributes reconstructs a record from a stored item.
func (RestaurantCodec) FromAttributes(item map[string]types.AttributeValue) (restaurant.Record, error) {
	name := ExtractString(item, repository.AttrRestaurantName)
	if name == "" {
		return restaurant.Record{}, fmt.Errorf("item has no %s attribute", repository.AttrRestaurantName)
	}

	categories := make([]restaurant.Category, 0)
	for _, value := range ExtractStringSet(item, repository.AttrCategories) {
		category, err := restaurant.ParseCategory(value)
		if err != nil {
			return restaurant.Record{}, fmt.Errorf("failed to decode categories: %w", err)
		}
		categories = append(categories, category)
	}

	notes, err := ExtractStringList(item, repository.AttrNotes)
	if err != nil {
		return restaurant.Record{}, fmt.Errorf("failed to decode notes: %w", err)
	}

	record := restaurant.Record{
		OwnerID:     ExtractString(item, repository.AttrUserID),
		Name:        name,
		Categories:  categories,
		TriedBefore: ExtractBool(item, repository.AttrTriedBefore),
		Rating:      ExtractNumber(item, repository.AttrRating),
		Review:      ExtractString(item, repository.AttrReview),
		Notes:       notes,
	}

	// Normalize the stored sentinels back to "absent".
	if record.Rating < 1 || record.Rating > 10 {
		record.Rating = 0
	}
	if strings.TrimSpace(record.Review) == "" {
		record.Review = ""
	}

	return record, nil
}

// KeyAttributes builds the primary key map for a record key.
func (RestaurantCodec) KeyAttributes(key restaurant.Key) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		repository.AttrUserID:        StringAttr(key.OwnerID()),
		repository.AttrNameLowercase: StringAttr(key.NameLowercase()),
	}
}
