package dynamodb

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-knowledge/internal/domain/restaurant"
	"restaurant-knowledge/internal/repository"
)

func TestRestaurantCodec_ToAttributes_FullRecord(t *testing.T) {
	codec := RestaurantCodec{}
	record := restaurant.Record{
		OwnerID:     "alice",
		Name:        "Trattoria ROMA",
		Categories:  []restaurant.Category{restaurant.CategoryPizza, restaurant.CategoryPasta},
		TriedBefore: true,
		Rating:      8,
		Review:      "great",
		Notes:       []string{"book ahead"},
	}

	item, err := codec.ToAttributes(record)
	require.NoError(t, err)

	assert.Equal(t, &types.AttributeValueMemberS{Value: "alice"}, item[repository.AttrUserID])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "trattoria roma"}, item[repository.AttrNameLowercase])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "Trattoria ROMA"}, item[repository.AttrRestaurantName])
	assert.Equal(t, &types.AttributeValueMemberBOOL{Value: true}, item[repository.AttrTriedBefore])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "8"}, item[repository.AttrRating])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "great"}, item[repository.AttrReview])
	assert.Equal(t, &types.AttributeValueMemberSS{Value: []string{"PASTA", "PIZZA"}}, item[repository.AttrCategories])
}

func TestRestaurantCodec_ToAttributes_OmitsAbsentValues(t *testing.T) {
	codec := RestaurantCodec{}
	record := restaurant.Record{
		OwnerID:    "alice",
		Name:       "Noodle Bar",
		Categories: []restaurant.Category{restaurant.CategoryRamen},
	}

	item, err := codec.ToAttributes(record)
	require.NoError(t, err)

	// Untried entries carry no flag, rating, review or notes.
	assert.NotContains(t, item, repository.AttrTriedBefore)
	assert.NotContains(t, item, repository.AttrRating)
	assert.NotContains(t, item, repository.AttrReview)
	assert.NotContains(t, item, repository.AttrNotes)
}

func TestRestaurantCodec_RoundTrip(t *testing.T) {
	codec := RestaurantCodec{}
	record := restaurant.Record{
		OwnerID:     "alice",
		Name:        "Kebab King",
		Categories:  []restaurant.Category{restaurant.CategoryKebab},
		TriedBefore: true,
		Rating:      6,
		Review:      "late night staple",
		Notes:       []string{"open till 4", "cash only"},
	}

	item, err := codec.ToAttributes(record)
	require.NoError(t, err)

	decoded, err := codec.FromAttributes(item)
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestRestaurantCodec_FromAttributes_NormalizesSentinels(t *testing.T) {
	codec := RestaurantCodec{}
	item := map[string]types.AttributeValue{
		repository.AttrUserID:         &types.AttributeValueMemberS{Value: "alice"},
		repository.AttrNameLowercase:  &types.AttributeValueMemberS{Value: "noodle bar"},
		repository.AttrRestaurantName: &types.AttributeValueMemberS{Value: "Noodle Bar"},
		repository.AttrTriedBefore:    &types.AttributeValueMemberBOOL{Value: false},
		repository.AttrRating:         &types.AttributeValueMemberN{Value: "0"},
		repository.AttrReview:         &types.AttributeValueMemberS{Value: ""},
	}

	record, err := codec.FromAttributes(item)
	require.NoError(t, err)

	assert.False(t, record.TriedBefore)
	assert.False(t, record.HasRating())
	assert.False(t, record.HasReview())
}

func TestRestaurantCodec_FromAttributes_ClampsOutOfRangeRating(t *testing.T) {
	codec := RestaurantCodec{}
	item := map[string]types.AttributeValue{
		repository.AttrUserID:         &types.AttributeValueMemberS{Value: "alice"},
		repository.AttrNameLowercase:  &types.AttributeValueMemberS{Value: "noodle bar"},
		repository.AttrRestaurantName: &types.AttributeValueMemberS{Value: "Noodle Bar"},
		repository.AttrRating:         &types.AttributeValueMemberN{Value: "99"},
	}

	record, err := codec.FromAttributes(item)
	require.NoError(t, err)
	assert.Zero(t, record.Rating)
}

func TestRestaurantCodec_FromAttributes_MissingName(t *testing.T) {
	codec := RestaurantCodec{}
	item := map[string]types.AttributeValue{
		repository.AttrUserID: &types.AttributeValueMemberS{Value: "alice"},
	}

	_, err := codec.FromAttributes(item)
	assert.Error(t, err)
}

func TestRestaurantCodec_FromAttributes_UnknownCategory(t *testing.T) {
	codec := RestaurantCodec{}
	item := map[string]types.AttributeValue{
		repository.AttrUserID:         &types.AttributeValueMemberS{Value: "alice"},
		repository.AttrNameLowercase:  &types.AttributeValueMemberS{Value: "noodle bar"},
		repository.AttrRestaurantName: &types.AttributeValueMemberS{Value: "Noodle Bar"},
		repository.AttrCategories:     &types.AttributeValueMemberSS{Value: []string{"SPACE_FOOD"}},
	}

	_, err := codec.FromAttributes(item)
	assert.Error(t, err)
}

func TestRestaurantCodec_KeyAttributes(t *testing.T) {
	key, err := restaurant.NewKey("alice", "Noodle BAR")
	require.NoError(t, err)

	attrs := RestaurantCodec{}.KeyAttributes(key)

	assert.Equal(t, &types.AttributeValueMemberS{Value: "alice"}, attrs[repository.AttrUserID])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "noodle bar"}, attrs[repository.AttrNameLowercase])
}
