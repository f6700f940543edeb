package restaurant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	category, err := ParseCategory("SUSHI")
	require.NoError(t, err)
	assert.Equal(t, CategorySushi, category)

	_, err = ParseCategory("sushi")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = ParseCategory("SPACE_FOOD")
	require.Error(t, err)
}

func TestCategoryValues_DeduplicatesAndSorts(t *testing.T) {
	values := CategoryValues([]Category{CategorySushi, CategoryAsian, CategorySushi, CategoryBeer})

	assert.Equal(t, []string{"ASIAN", "BEER", "SUSHI"}, values)
}

func TestCategoriesEqual_IgnoresOrderAndDuplicates(t *testing.T) {
	assert.True(t, categoriesEqual(
		[]Category{CategoryPizza, CategoryBeer},
		[]Category{CategoryBeer, CategoryPizza, CategoryBeer},
	))
	assert.False(t, categoriesEqual(
		[]Category{CategoryPizza},
		[]Category{CategoryPizza, CategoryBeer},
	))
}
