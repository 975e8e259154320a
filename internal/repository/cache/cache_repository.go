package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/neighborhood-service/internal/domain"
	"github.com/neighborhood-service/internal/domain/repository"
	"github.com/neighborhood-service/internal/pkg/utils"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetPoint получает закешированный результат геокодирования
func (r *cacheRepository) GetPoint(ctx context.Context, address string) (*domain.Point, error) {
	key := geocodeKey(address)
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var point domain.Point
	if err := json.Unmarshal(data, &point); err != nil {
		r.logger.Error("Failed to unmarshal point from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal point: %w", err)
	}

	return &point, nil
}

// SetPoint сохраняет результат геокодирования в кеше
func (r *cacheRepository) SetPoint(ctx context.Context, address string, point *domain.Point, ttl time.Duration) error {
	data, err := json.Marshal(point)
	if err != nil {
		r.logger.Error("Failed to marshal point", zap.Error(err))
		return fmt.Errorf("marshal point: %w", err)
	}

	return r.Set(ctx, geocodeKey(address), data, ttl)
}

// GetPOIs получает закешированный результат пространственного поиска
func (r *cacheRepository) GetPOIs(ctx context.Context, lat, lon float64, radiusM int) ([]domain.POI, error) {
	key := nearbyKey(lat, lon, radiusM)
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var pois []domain.POI
	if err := json.Unmarshal(data, &pois); err != nil {
		r.logger.Error("Failed to unmarshal POIs from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal pois: %w", err)
	}

	return pois, nil
}

// SetPOIs сохраняет результат пространственного поиска в кеше
func (r *cacheRepository) SetPOIs(ctx context.Context, lat, lon float64, radiusM int, pois []domain.POI, ttl time.Duration) error {
	data, err := json.Marshal(pois)
	if err != nil {
		r.logger.Error("Failed to marshal POIs", zap.Error(err))
		return fmt.Errorf("marshal pois: %w", err)
	}

	return r.Set(ctx, nearbyKey(lat, lon, radiusM), data, ttl)
}

func geocodeKey(address string) string {
	return "geocode:" + utils.NormalizeAddress(address)
}

func nearbyKey(lat, lon float64, radiusM int) string {
	return fmt.Sprintf("nearby:%.5f:%.5f:%d", lat, lon, radiusM)
}
