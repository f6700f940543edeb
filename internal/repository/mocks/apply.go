package mocks

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"restaurant-knowledge/internal/domain/restaurant"
	"restaurant-knowledge/internal/repository"
)

// applyInstructions replays attribute updates onto a record, mirroring
// how the table would apply them. Unknown attributes are ignored.
func applyInstructions(base restaurant.Record, instructions repository.UpdateInstructions) restaurant.Record {
	record := base
	for name, update := range instructions {
		remove := update.Action == types.AttributeActionDelete
		switch name {
		case repository.AttrRestaurantName:
			if s, ok := stringValue(update.Value); ok {
				record.Name = s
			}
		case repository.AttrTriedBefore:
			if remove {
				record.TriedBefore = false
			} else if b, ok := update.Value.(*types.AttributeValueMemberBOOL); ok {
				record.TriedBefore = b.Value
			}
		case repository.AttrRating:
			if remove {
				record.Rating = 0
			} else if n, ok := update.Value.(*types.AttributeValueMemberN); ok {
				rating, _ := strconv.Atoi(n.Value)
				record.Rating = rating
			}
		case repository.AttrReview:
			if remove {
				record.Review = ""
			} else if s, ok := stringValue(update.Value); ok {
				record.Review = s
			}
		case repository.AttrCategories:
			if remove {
				record.Categories = nil
			} else if ss, ok := update.Value.(*types.AttributeValueMemberSS); ok {
				categories := make([]restaurant.Category, 0, len(ss.Value))
				for _, v := range ss.Value {
					categories = append(categories, restaurant.Category(v))
				}
				record.Categories = categories
			}
		case repository.AttrNotes:
			if remove {
				record.Notes = nil
			} else if l, ok := update.Value.(*types.AttributeValueMemberL); ok {
				notes := make([]string, 0, len(l.Value))
				for _, item := range l.Value {
					if s, ok := stringValue(item); ok {
						notes = append(notes, s)
					}
				}
				record.Notes = notes
			}
		}
	}
	return record
}

func stringValue(value types.AttributeValue) (string, bool) {
	s, ok := value.(*types.AttributeValueMemberS)
	if !ok {
		return "", false
	}
	return s.Value, true
}
