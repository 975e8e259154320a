package domain

// StayType - тип пребывания пользователя в районе
type StayType string

const (
	StayLive   StayType = "live"
	StayTravel StayType = "travel"
)

// EatOutFrequency - как часто пользователь ест вне дома
type EatOutFrequency string

const (
	EatOutRarely    EatOutFrequency = "rarely"
	EatOutSometimes EatOutFrequency = "sometimes"
	EatOutOften     EatOutFrequency = "often"
)

// GroceryFrequency - как часто пользователь покупает продукты
type GroceryFrequency string

const (
	GroceriesDaily        GroceryFrequency = "daily"
	GroceriesFewTimesWeek GroceryFrequency = "few_times_week"
	GroceriesWeekly       GroceryFrequency = "weekly"
	GroceriesRarely       GroceryFrequency = "rarely"
)

// ParksNeed - потребность пользователя в зелёных зонах
type ParksNeed string

const (
	ParksLow    ParksNeed = "low"
	ParksMedium ParksNeed = "medium"
	ParksHigh   ParksNeed = "high"
)

// Preferences - предпочтения пользователя, неизменяемые в рамках запроса
type Preferences struct {
	StayType  StayType         `json:"stayType"`
	EatOut    EatOutFrequency  `json:"eatOut"`
	Groceries GroceryFrequency `json:"groceries"`
	ParksNeed ParksNeed        `json:"parksNeed"`
}

// DefaultPreferences - значения по умолчанию для опущенных полей
func DefaultPreferences() Preferences {
	return Preferences{
		StayType:  StayLive,
		EatOut:    EatOutSometimes,
		Groceries: GroceriesWeekly,
		ParksNeed: ParksMedium,
	}
}

// Normalized возвращает копию предпочтений, где пустые или неизвестные
// значения заменены значениями по умолчанию.
func (p Preferences) Normalized() Preferences {
	out := DefaultPreferences()
	switch p.StayType {
	case StayLive, StayTravel:
		out.StayType = p.StayType
	}
	switch p.EatOut {
	case EatOutRarely, EatOutSometimes, EatOutOften:
		out.EatOut = p.EatOut
	}
	switch p.Groceries {
	case GroceriesDaily, GroceriesFewTimesWeek, GroceriesWeekly, GroceriesRarely:
		out.Groceries = p.Groceries
	}
	switch p.ParksNeed {
	case ParksLow, ParksMedium, ParksHigh:
		out.ParksNeed = p.ParksNeed
	}
	return out
}

// Verdict - итоговая качественная оценка района
type Verdict string

const (
	VerdictGreat   Verdict = "great"
	VerdictGood    Verdict = "good"
	VerdictNeutral Verdict = "neutral"
	VerdictPoor    Verdict = "poor"
)

// VerdictForScore переводит итоговый балл в вердикт:
// >=8 great, 6-7 good, <=3 poor, иначе neutral.
func VerdictForScore(score int) Verdict {
	switch {
	case score >= 8:
		return VerdictGreat
	case score >= 6:
		return VerdictGood
	case score <= 3:
		return VerdictPoor
	default:
		return VerdictNeutral
	}
}

// Rating - оценка одного измерения
type Rating struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// Ratings - оценки по четырём измерениям
type Ratings struct {
	Food      Rating `json:"food"`
	Groceries Rating `json:"groceries"`
	Parks     Rating `json:"parks"`
	Fuel      Rating `json:"fuel"`
}

// ProviderFallback помечает результат, полученный эвристикой после
// неудачной попытки генеративной стратегии.
const ProviderFallback = "fallback"

// RatingResult - итоговый результат оценки района
type RatingResult struct {
	Summary      string  `json:"summary"`
	Verdict      Verdict `json:"verdict"`
	OverallScore int     `json:"overallScore"`
	Ratings      Ratings `json:"ratings"`
	Provider     string  `json:"provider,omitempty"`
}
