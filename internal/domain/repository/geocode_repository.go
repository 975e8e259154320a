package repository

import (
	"context"

	"github.com/neighborhood-service/internal/domain"
)

// GeocodeRepository - интерфейс геокодера (адрес -> координаты)
type GeocodeRepository interface {
	Geocode(ctx context.Context, address string) (*domain.Point, error)
}
