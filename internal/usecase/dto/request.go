package dto

import "github.com/neighborhood-service/internal/domain"

// PreferencesInput - предпочтения пользователя в запросе.
// Любое опущенное поле получает значение по умолчанию
// (live / sometimes / weekly / medium).
type PreferencesInput struct {
	StayType  string `json:"stayType" validate:"omitempty,oneof=live travel"`
	EatOut    string `json:"eatOut" validate:"omitempty,oneof=rarely sometimes often"`
	Groceries string `json:"groceries" validate:"omitempty,oneof=daily few_times_week weekly rarely"`
	ParksNeed string `json:"parksNeed" validate:"omitempty,oneof=low medium high"`
}

// ToDomain преобразует входные предпочтения в доменные, подставляя
// значения по умолчанию. nil трактуется как "все по умолчанию".
func (p *PreferencesInput) ToDomain() domain.Preferences {
	if p == nil {
		return domain.DefaultPreferences()
	}
	return domain.Preferences{
		StayType:  domain.StayType(p.StayType),
		EatOut:    domain.EatOutFrequency(p.EatOut),
		Groceries: domain.GroceryFrequency(p.Groceries),
		ParksNeed: domain.ParksNeed(p.ParksNeed),
	}.Normalized()
}

// RateRequest - запрос на оценку района по готовому списку POI.
// Отсутствующий facilities трактуется как пустой список.
type RateRequest struct {
	Facilities  []domain.POI      `json:"facilities"`
	Address     string            `json:"address"`
	Radius      int               `json:"radius" validate:"omitempty,min=10,max=5000"`
	Preferences *PreferencesInput `json:"preferences,omitempty"`
}

// EvaluateRequest - запрос на полный цикл: геокодирование адреса,
// поиск POI вокруг и оценка района.
type EvaluateRequest struct {
	Address     string            `json:"address" validate:"required,min=3"`
	Radius      int               `json:"radius" validate:"omitempty,min=10,max=5000"`
	Preferences *PreferencesInput `json:"preferences,omitempty"`
}
