package repository

import (
	"context"

	"github.com/neighborhood-service/internal/domain"
)

// POIRepository - интерфейс источника POI (пространственный запрос вокруг точки)
type POIRepository interface {
	// SearchAround возвращает POI в радиусе radiusM метров от точки,
	// отсортированные по расстоянию от центра
	SearchAround(ctx context.Context, lat, lon float64, radiusM int) ([]domain.POI, error)
}
