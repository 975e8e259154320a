package domain_test

import (
	"fmt"
	"testing"

	"github.com/neighborhood-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poisFromCategories(categories ...string) []domain.POI {
	pois := make([]domain.POI, len(categories))
	for i, c := range categories {
		pois[i] = domain.POI{
			ID:       int64(i),
			Type:     "node",
			Lat:      41.0,
			Lon:      2.0,
			Name:     c,
			Category: c,
		}
	}
	return pois
}

func TestAggregatePOIs(t *testing.T) {
	t.Run("counts groups and categories", func(t *testing.T) {
		agg := domain.AggregatePOIs(poisFromCategories(
			"cafe", "cafe", "restaurant", "supermarket", "park", "fuel", "hotel",
		))

		assert.Equal(t, 7, agg.Total)
		assert.Equal(t, domain.GroupCounts{Food: 3, Groceries: 1, Parks: 1, Fuel: 1}, agg.Groups)
		assert.Equal(t, 2, agg.Categories["cafe"])
		// hotel не входит ни в одну группу, но считается по категории
		assert.Equal(t, 1, agg.Categories["hotel"])
	})

	t.Run("group sum never exceeds total", func(t *testing.T) {
		agg := domain.AggregatePOIs(poisFromCategories("hotel", "bench", "cafe"))
		groupSum := agg.Groups.Food + agg.Groups.Groceries + agg.Groups.Parks + agg.Groups.Fuel
		assert.LessOrEqual(t, groupSum, agg.Total)
	})

	t.Run("cafes split from the rest of the food group", func(t *testing.T) {
		agg := domain.AggregatePOIs(poisFromCategories(
			"cafe", "ice_cream", "restaurant", "fast_food",
		))

		assert.Equal(t, 4, agg.Groups.Food)
		assert.Equal(t, 2, agg.Cafes)
		assert.Equal(t, 2, agg.Restaurants)
	})

	t.Run("empty category counted as unknown", func(t *testing.T) {
		agg := domain.AggregatePOIs([]domain.POI{
			{ID: 1, Lat: 1, Lon: 1, Name: "Joe's"},
		})

		assert.Equal(t, 1, agg.Categories[domain.CategoryUnknown])
		assert.Equal(t, domain.GroupCounts{}, agg.Groups)
	})

	t.Run("empty list produces zero counts", func(t *testing.T) {
		agg := domain.AggregatePOIs(nil)
		assert.Equal(t, 0, agg.Total)
		assert.Equal(t, domain.GroupCounts{}, agg.Groups)
		assert.Empty(t, agg.TopCategories())
	})
}

func TestAggregate_TopCategories(t *testing.T) {
	t.Run("ordered by count desc, ties by first seen", func(t *testing.T) {
		agg := domain.AggregatePOIs(poisFromCategories(
			"park", "cafe", "cafe", "fuel", "park", "bakery",
		))

		top := agg.TopCategories()
		require.Len(t, top, 4)
		// cafe и park по 2, park встречен раньше
		assert.Equal(t, domain.CategoryCount{Category: "park", Count: 2}, top[0])
		assert.Equal(t, domain.CategoryCount{Category: "cafe", Count: 2}, top[1])
		assert.Equal(t, domain.CategoryCount{Category: "fuel", Count: 1}, top[2])
		assert.Equal(t, domain.CategoryCount{Category: "bakery", Count: 1}, top[3])
	})

	t.Run("capped at six categories", func(t *testing.T) {
		var categories []string
		for i := 0; i < 9; i++ {
			categories = append(categories, fmt.Sprintf("category_%d", i))
		}

		agg := domain.AggregatePOIs(poisFromCategories(categories...))
		assert.Len(t, agg.TopCategories(), 6)
	})
}

func TestGroupForCategory(t *testing.T) {
	cases := map[string]string{
		"restaurant": domain.GroupFood,
		"ice_cream":  domain.GroupFood,
		"beverages":  domain.GroupGroceries,
		"deli":       domain.GroupGroceries,
		"common":     domain.GroupParks,
		"fuel":       domain.GroupFuel,
	}
	for category, expected := range cases {
		group, ok := domain.GroupForCategory(category)
		require.True(t, ok, category)
		assert.Equal(t, expected, group)
	}

	_, ok := domain.GroupForCategory("hotel")
	assert.False(t, ok)
}
