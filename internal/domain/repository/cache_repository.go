package repository

import (
	"context"
	"time"

	"github.com/neighborhood-service/internal/domain"
)

// CacheRepository - интерфейс кеша для ответов внешних сервисов
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// GetPoint / SetPoint - кеш результатов геокодирования по адресу
	GetPoint(ctx context.Context, address string) (*domain.Point, error)
	SetPoint(ctx context.Context, address string, point *domain.Point, ttl time.Duration) error

	// GetPOIs / SetPOIs - кеш результатов пространственного поиска
	GetPOIs(ctx context.Context, lat, lon float64, radiusM int) ([]domain.POI, error)
	SetPOIs(ctx context.Context, lat, lon float64, radiusM int, pois []domain.POI, ttl time.Duration) error
}
