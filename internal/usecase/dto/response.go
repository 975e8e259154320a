package dto

import "github.com/neighborhood-service/internal/domain"

// GeocodeResponse - ответ на геокодирование адреса
type GeocodeResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NearbyResponse - ответ на поиск POI вокруг точки
type NearbyResponse struct {
	POIs          []domain.POI           `json:"pois"`
	Total         int                    `json:"total"`
	Groups        domain.GroupCounts     `json:"groups"`
	TopCategories []domain.CategoryCount `json:"top_categories"`
}

// EvaluateResponse - ответ полного цикла оценки по адресу
type EvaluateResponse struct {
	Coordinates   domain.Point           `json:"coordinates"`
	Total         int                    `json:"total"`
	Groups        domain.GroupCounts     `json:"groups"`
	TopCategories []domain.CategoryCount `json:"top_categories"`
	Rating        *domain.RatingResult   `json:"rating"`
}
