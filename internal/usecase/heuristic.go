package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/neighborhood-service/internal/domain"
)

// HeuristicStrategy - детерминированная стратегия оценки района.
// Чистая функция от (счётчики групп, предпочтения), внешних зависимостей нет.
type HeuristicStrategy struct{}

func NewHeuristicStrategy() *HeuristicStrategy {
	return &HeuristicStrategy{}
}

// Лестницы баллов по порогам количества: >=5 / 3-4 / 2 / 1 / 0.
// Чем реже пользователь пользуется измерением, тем мягче штраф за
// низкую плотность; при "rarely" балл не опускается ниже 8.
var foodLadders = map[domain.EatOutFrequency][5]int{
	domain.EatOutOften:     {10, 8, 5, 3, 1},
	domain.EatOutSometimes: {10, 8, 6, 4, 2},
	domain.EatOutRarely:    {10, 10, 9, 9, 8},
}

var groceryLadders = map[domain.GroceryFrequency][5]int{
	domain.GroceriesDaily:        {10, 8, 5, 2, 0},
	domain.GroceriesFewTimesWeek: {10, 8, 6, 3, 0},
	domain.GroceriesWeekly:       {9, 8, 6, 4, 0},
	domain.GroceriesRarely:       {10, 10, 9, 9, 8},
}

// Пороги для парков: >=3 / 2 / 1 / 0
var parkLadders = map[domain.ParksNeed][4]int{
	domain.ParksHigh:   {10, 8, 4, 1},
	domain.ParksMedium: {10, 9, 7, 6},
	domain.ParksLow:    {10, 10, 9, 8},
}

// Веса измерений в итоговом балле
var (
	foodWeights = map[domain.EatOutFrequency]float64{
		domain.EatOutOften:     1.0,
		domain.EatOutSometimes: 0.7,
		domain.EatOutRarely:    0.3,
	}
	groceryWeights = map[domain.GroceryFrequency]float64{
		domain.GroceriesDaily:        1.0,
		domain.GroceriesFewTimesWeek: 0.8,
		domain.GroceriesWeekly:       0.6,
		domain.GroceriesRarely:       0.3,
	}
	parkWeights = map[domain.ParksNeed]float64{
		domain.ParksHigh:   0.9,
		domain.ParksMedium: 0.6,
		domain.ParksLow:    0.2,
	}
)

const fuelWeight = 0.4

// Evaluate вычисляет оценки всех измерений, итоговый балл, вердикт
// и текстовое описание района.
func (s *HeuristicStrategy) Evaluate(agg domain.Aggregate, prefs domain.Preferences) *domain.RatingResult {
	counts := agg.Groups

	ratings := domain.Ratings{
		Food: domain.Rating{
			Score:  clampScore(ladderScore(counts.Food, foodLadders[prefs.EatOut])),
			Reason: foodReason(counts.Food, prefs.EatOut),
		},
		Groceries: domain.Rating{
			Score:  clampScore(ladderScore(counts.Groceries, groceryLadders[prefs.Groceries])),
			Reason: groceryReason(counts.Groceries, prefs.Groceries),
		},
		Parks: domain.Rating{
			Score:  clampScore(parkScore(counts.Parks, parkLadders[prefs.ParksNeed])),
			Reason: parkReason(counts.Parks, prefs.ParksNeed),
		},
		Fuel: domain.Rating{
			Score:  clampScore(fuelScore(counts.Fuel)),
			Reason: fuelReason(counts.Fuel),
		},
	}

	overall := overallScore(ratings, prefs)

	return &domain.RatingResult{
		Summary:      s.buildSummary(agg, prefs),
		Verdict:      domain.VerdictForScore(overall),
		OverallScore: overall,
		Ratings:      ratings,
	}
}

// ladderScore применяет пороговую лестницу >=5 / 3-4 / 2 / 1 / 0
func ladderScore(count int, ladder [5]int) int {
	switch {
	case count >= 5:
		return ladder[0]
	case count >= 3:
		return ladder[1]
	case count == 2:
		return ladder[2]
	case count == 1:
		return ladder[3]
	default:
		return ladder[4]
	}
}

// parkScore применяет пороговую лестницу >=3 / 2 / 1 / 0
func parkScore(count int, ladder [4]int) int {
	switch {
	case count >= 3:
		return ladder[0]
	case count == 2:
		return ladder[1]
	case count == 1:
		return ladder[2]
	default:
		return ladder[3]
	}
}

// fuelScore - единственная лестница, не зависящая от предпочтений
func fuelScore(count int) int {
	switch {
	case count >= 3:
		return 9
	case count == 2:
		return 8
	case count == 1:
		return 7
	default:
		return 6
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// overallScore - взвешенное среднее оценок измерений, округлённое
// до целого и ограниченное [0,10]
func overallScore(ratings domain.Ratings, prefs domain.Preferences) int {
	wFood := foodWeights[prefs.EatOut]
	wGroceries := groceryWeights[prefs.Groceries]
	wParks := parkWeights[prefs.ParksNeed]

	sum := float64(ratings.Food.Score)*wFood +
		float64(ratings.Groceries.Score)*wGroceries +
		float64(ratings.Parks.Score)*wParks +
		float64(ratings.Fuel.Score)*fuelWeight
	totalWeight := wFood + wGroceries + wParks + fuelWeight

	return clampScore(int(math.Round(sum / totalWeight)))
}

func foodReason(count int, eatOut domain.EatOutFrequency) string {
	base := fmt.Sprintf("%s nearby", plural(count, "dining option", "dining options"))
	switch eatOut {
	case domain.EatOutOften:
		return base + ", which weighs heavily since you eat out often."
	case domain.EatOutRarely:
		return base + ", but you rarely eat out, so this hardly matters."
	default:
		return base + "."
	}
}

func groceryReason(count int, groceries domain.GroceryFrequency) string {
	base := fmt.Sprintf("%s nearby", plural(count, "grocery store", "grocery stores"))
	switch groceries {
	case domain.GroceriesDaily:
		return base + ", and you shop for groceries daily."
	case domain.GroceriesRarely:
		return base + ", but you rarely shop for groceries, so this hardly matters."
	default:
		return base + "."
	}
}

func parkReason(count int, need domain.ParksNeed) string {
	base := fmt.Sprintf("%s nearby", plural(count, "park or green area", "parks and green areas"))
	switch need {
	case domain.ParksHigh:
		return base + ", and green space matters a lot to you."
	case domain.ParksLow:
		return base + ", and green space is not a priority for you."
	default:
		return base + "."
	}
}

func fuelReason(count int) string {
	return fmt.Sprintf("%s nearby.", plural(count, "fuel station", "fuel stations"))
}

// buildSummary строит описание в два прохода: базовое перечисление
// ненулевых счётчиков в фиксированном порядке, затем персонализация
// и fit-предложение. Fit-балл намеренно независим от числового вердикта.
func (s *HeuristicStrategy) buildSummary(agg domain.Aggregate, prefs domain.Preferences) string {
	var parts []string
	appendPart := func(count int, singular, pluralForm string) {
		if count > 0 {
			parts = append(parts, plural(count, singular, pluralForm))
		}
	}
	appendPart(agg.Cafes, "cafe", "cafes")
	appendPart(agg.Restaurants, "restaurant", "restaurants")
	appendPart(agg.Groups.Groceries, "grocery store", "grocery stores")
	appendPart(agg.Groups.Parks, "park", "parks")
	appendPart(agg.Groups.Fuel, "fuel station", "fuel stations")

	base := "This area has no notable amenities in the selected radius."
	if len(parts) > 0 {
		base = "This area has " + joinList(parts) + "."
	}

	qualifiers := "Expect " + joinList([]string{
		diningQualifier(agg.Groups.Food),
		groceryQualifier(agg.Groups.Groceries),
		parkQualifier(agg.Groups.Parks),
		fuelQualifier(agg.Groups.Fuel),
	}) + "."

	return base + " " + qualifiers + " " + fitSentence(agg.Groups, prefs)
}

func diningQualifier(food int) string {
	switch {
	case food >= 5:
		return "plenty of dining choices"
	case food >= 2:
		return "a decent choice of places to eat"
	case food == 1:
		return "very limited dining"
	default:
		return "no dining options"
	}
}

func groceryQualifier(groceries int) string {
	switch {
	case groceries >= 2:
		return "good grocery coverage"
	case groceries == 1:
		return "minimal grocery coverage"
	default:
		return "no grocery shopping"
	}
}

func parkQualifier(parks int) string {
	switch {
	case parks >= 2:
		return "good access to green space"
	case parks == 1:
		return "some green space"
	default:
		return "no green space"
	}
}

func fuelQualifier(fuel int) string {
	if fuel > 0 {
		return "a fuel station within reach"
	}
	return "no fuel nearby"
}

// fitSentence - текстовый fit-вердикт по знаковому балу предпочтений.
// Ужин учитывается только при eatOut=often, продукты штрафуются при
// stayType=live и <2 магазинах, парки - при parksNeed=high и <2 парках.
func fitSentence(counts domain.GroupCounts, prefs domain.Preferences) string {
	fit := 0
	if prefs.EatOut == domain.EatOutOften {
		if counts.Food >= 3 {
			fit += 2
		} else {
			fit -= 2
		}
	}
	if prefs.StayType == domain.StayLive {
		if counts.Groceries >= 2 {
			fit++
		} else {
			fit -= 2
		}
		if counts.Fuel == 0 {
			fit--
		}
	}
	if prefs.ParksNeed == domain.ParksHigh {
		if counts.Parks >= 2 {
			fit += 2
		} else {
			fit -= 2
		}
	}
	if prefs.ParksNeed == domain.ParksMedium && counts.Parks > 0 {
		fit++
	}

	switch {
	case fit >= 3:
		return "An excellent fit for how you live."
	case fit >= 1:
		return "A good fit for your lifestyle."
	case fit >= -1:
		return "A workable fit for your lifestyle."
	default:
		return "This area does not line up well with your preferences."
	}
}

func plural(count int, singular, pluralForm string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", count, pluralForm)
}

func joinList(parts []string) string {
	if len(parts) <= 1 {
		return strings.Join(parts, "")
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}
