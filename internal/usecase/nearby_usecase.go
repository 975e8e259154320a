package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/neighborhood-service/internal/domain"
	"github.com/neighborhood-service/internal/domain/repository"
	"github.com/neighborhood-service/internal/pkg/errors"
	"github.com/neighborhood-service/internal/pkg/utils"
	"github.com/neighborhood-service/internal/usecase/dto"
)

// NearbyUseCase - use case для геокодирования и поиска POI вокруг точки
type NearbyUseCase struct {
	geocodeRepo    repository.GeocodeRepository
	poiRepo        repository.POIRepository
	cacheRepo      repository.CacheRepository
	logger         *zap.Logger
	geocodeTTL     time.Duration
	nearbyTTL      time.Duration
	defaultRadiusM int
}

// NewNearbyUseCase - создание нового NearbyUseCase.
// cacheRepo может быть nil, тогда кеширование отключено.
func NewNearbyUseCase(
	geocodeRepo repository.GeocodeRepository,
	poiRepo repository.POIRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	geocodeTTL time.Duration,
	nearbyTTL time.Duration,
	defaultRadiusM int,
) *NearbyUseCase {
	return &NearbyUseCase{
		geocodeRepo:    geocodeRepo,
		poiRepo:        poiRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
		geocodeTTL:     geocodeTTL,
		nearbyTTL:      nearbyTTL,
		defaultRadiusM: defaultRadiusM,
	}
}

// DefaultRadiusM возвращает радиус поиска по умолчанию
func (uc *NearbyUseCase) DefaultRadiusM() int {
	return uc.defaultRadiusM
}

// Geocode возвращает координаты адреса, с кешированием
func (uc *NearbyUseCase) Geocode(ctx context.Context, address string) (*domain.Point, error) {
	if address == "" {
		return nil, errors.ErrAddressRequired
	}

	if uc.cacheRepo != nil {
		if point, err := uc.cacheRepo.GetPoint(ctx, address); err == nil && point != nil {
			return point, nil
		}
	}

	point, err := uc.geocodeRepo.Geocode(ctx, address)
	if err != nil {
		uc.logger.Error("Failed to geocode address", zap.String("address", address), zap.Error(err))
		return nil, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetPoint(ctx, address, point, uc.geocodeTTL); err != nil {
			// Кеш не критичен, продолжаем
			uc.logger.Warn("Failed to cache geocode result", zap.Error(err))
		}
	}

	return point, nil
}

// Nearby возвращает POI в радиусе вокруг точки, с кешированием
func (uc *NearbyUseCase) Nearby(ctx context.Context, lat, lon float64, radiusM int) (*dto.NearbyResponse, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if radiusM == 0 {
		radiusM = uc.defaultRadiusM
	}
	if !utils.ValidateRadiusM(radiusM) {
		return nil, errors.ErrInvalidRadius
	}

	pois, err := uc.searchAround(ctx, lat, lon, radiusM)
	if err != nil {
		return nil, err
	}

	agg := domain.AggregatePOIs(pois)
	return &dto.NearbyResponse{
		POIs:          pois,
		Total:         agg.Total,
		Groups:        agg.Groups,
		TopCategories: agg.TopCategories(),
	}, nil
}

func (uc *NearbyUseCase) searchAround(ctx context.Context, lat, lon float64, radiusM int) ([]domain.POI, error) {
	if uc.cacheRepo != nil {
		if pois, err := uc.cacheRepo.GetPOIs(ctx, lat, lon, radiusM); err == nil && pois != nil {
			return pois, nil
		}
	}

	pois, err := uc.poiRepo.SearchAround(ctx, lat, lon, radiusM)
	if err != nil {
		uc.logger.Error("Failed to discover POIs",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Int("radius_m", radiusM),
			zap.Error(err))
		return nil, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetPOIs(ctx, lat, lon, radiusM, pois, uc.nearbyTTL); err != nil {
			uc.logger.Warn("Failed to cache POI results", zap.Error(err))
		}
	}

	return pois, nil
}
