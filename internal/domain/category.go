package domain

import "sort"

// Group constants - четыре измерения оценки района
const (
	GroupFood      = "food"
	GroupGroceries = "groceries"
	GroupParks     = "parks"
	GroupFuel      = "fuel"
)

// CategoryUnknown - ключ для POI без разрешённой категории
const CategoryUnknown = "unknown"

// Категории, входящие в каждую группу. Таблица фиксированная:
// категории вне таблицы учитываются в per-category счётчиках,
// но не попадают ни в одну группу.
var (
	FoodCategories = []string{
		"restaurant", "fast_food", "food_court", "cafe", "ice_cream",
	}
	GroceryCategories = []string{
		"supermarket", "hypermarket", "convenience", "greengrocer", "butcher",
		"bakery", "grocery", "deli", "farm", "organic", "health_food",
		"cheese", "beverages",
	}
	ParkCategories = []string{
		"park", "garden", "recreation_ground", "common", "nature_reserve",
	}
	FuelCategories = []string{"fuel"}
)

// Кафе-подмножество food-группы, выделяется отдельно для текстового описания
var cafeCategories = map[string]bool{
	"cafe":      true,
	"ice_cream": true,
}

var categoryGroups = buildCategoryGroups()

func buildCategoryGroups() map[string]string {
	m := make(map[string]string)
	for _, c := range FoodCategories {
		m[c] = GroupFood
	}
	for _, c := range GroceryCategories {
		m[c] = GroupGroceries
	}
	for _, c := range ParkCategories {
		m[c] = GroupParks
	}
	for _, c := range FuelCategories {
		m[c] = GroupFuel
	}
	return m
}

// GroupForCategory возвращает группу для категории и false, если категория
// не входит ни в одну группу.
func GroupForCategory(category string) (string, bool) {
	g, ok := categoryGroups[category]
	return g, ok
}

// GroupCounts - счётчики POI по четырём группам
type GroupCounts struct {
	Food      int `json:"food"`
	Groceries int `json:"groceries"`
	Parks     int `json:"parks"`
	Fuel      int `json:"fuel"`
}

// CategoryCount - счётчик одной категории для topCategories-списка
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// maxTopCategories - размер topCategories-списка
const maxTopCategories = 6

// Aggregate - результат агрегации списка POI
type Aggregate struct {
	Total       int
	Categories  map[string]int
	Groups      GroupCounts
	Cafes       int // cafe + ice_cream, для текстового описания
	Restaurants int // остальная часть food-группы

	firstSeen map[string]int
}

// AggregatePOIs сводит список POI в счётчики категорий и групп.
// POI без категории учитываются под ключом "unknown".
func AggregatePOIs(pois []POI) Aggregate {
	agg := Aggregate{
		Total:      len(pois),
		Categories: make(map[string]int),
		firstSeen:  make(map[string]int),
	}

	for i, poi := range pois {
		category := poi.Category
		if category == "" {
			category = CategoryUnknown
		}
		if _, seen := agg.firstSeen[category]; !seen {
			agg.firstSeen[category] = i
		}
		agg.Categories[category]++

		group, ok := GroupForCategory(category)
		if !ok {
			continue
		}
		switch group {
		case GroupFood:
			agg.Groups.Food++
			if cafeCategories[category] {
				agg.Cafes++
			} else {
				agg.Restaurants++
			}
		case GroupGroceries:
			agg.Groups.Groceries++
		case GroupParks:
			agg.Groups.Parks++
		case GroupFuel:
			agg.Groups.Fuel++
		}
	}

	return agg
}

// TopCategories возвращает до 6 самых частых категорий.
// Сортировка: по убыванию счётчика, при равенстве - категория, встреченная раньше.
func (a Aggregate) TopCategories() []CategoryCount {
	result := make([]CategoryCount, 0, len(a.Categories))
	for category, count := range a.Categories {
		result = append(result, CategoryCount{Category: category, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return a.firstSeen[result[i].Category] < a.firstSeen[result[j].Category]
	})

	if len(result) > maxTopCategories {
		result = result[:maxTopCategories]
	}
	return result
}
