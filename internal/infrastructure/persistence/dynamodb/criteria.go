package dynamodb

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"

	"restaurant-knowledge/internal/domain/restaurant"
	"restaurant-knowledge/internal/repository"
)

// restaurantCriteria translates a sparse restaurant query into the
// store's key-condition / filter-condition pair for one owner's
// partition.
type restaurantCriteria struct {
	ownerID  string
	criteria restaurant.QueryCriteria
}

// NewRestaurantCriteria binds query criteria to the owning user's
// partition.
func NewRestaurantCriteria(ownerID string, criteria restaurant.QueryCriteria) CriteriaTranslator {
	return restaurantCriteria{ownerID: ownerID, criteria: criteria}
}

func (c restaurantCriteria) IsEmpty() bool {
	return c.criteria.IsEmpty()
}

// KeyCondition is always owner EQ, narrowed by a lower-cased name
// prefix when the query asks for one.
func (c restaurantCriteria) KeyCondition() expression.KeyConditionBuilder {
	condition := expression.Key(repository.AttrUserID).Equal(expression.Value(c.ownerID))
	if prefix := c.criteria.NameBeginsWith; prefix != "" {
		condition = condition.And(
			expression.Key(repository.AttrNameLowercase).BeginsWith(strings.ToLower(prefix)),
		)
	}
	return condition
}

// Filter builds the post-read conditions. The tried-before filter has
// to account for the write-side convention that a false flag is simply
// omitted from the item. The rating filter is dropped when the query
// explicitly asks for untried entries, which never carry a rating.
func (c restaurantCriteria) Filter() (expression.ConditionBuilder, bool) {
	var conditions []expression.ConditionBuilder

	if category := c.criteria.Category; category != "" {
		conditions = append(conditions,
			expression.Contains(expression.Name(repository.AttrCategories), category.String()))
	}
	if tried := c.criteria.TriedBefore; tried != nil {
		attr := expression.Name(repository.AttrTriedBefore)
		if *tried {
			conditions = append(conditions, expression.Equal(attr, expression.Value(true)))
		} else {
			conditions = append(conditions, expression.Or(
				expression.AttributeNotExists(attr),
				expression.Equal(attr, expression.Value(false)),
			))
		}
	}
	if min := c.criteria.RatingAtLeast; min > 0 && !c.explicitlyUntried() {
		conditions = append(conditions,
			expression.GreaterThanEqual(expression.Name(repository.AttrRating), expression.Value(min)))
	}

	if len(conditions) == 0 {
		return expression.ConditionBuilder{}, false
	}
	combined := conditions[0]
	for _, condition := range conditions[1:] {
		combined = combined.And(condition)
	}
	return combined, true
}

func (c restaurantCriteria) explicitlyUntried() bool {
	return c.criteria.TriedBefore != nil && !*c.criteria.TriedBefore
}
