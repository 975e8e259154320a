package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neighborhood-service/internal/domain"
	"github.com/neighborhood-service/internal/pkg/errors"
	"github.com/neighborhood-service/internal/usecase"
)

type MockGeocodeRepository struct {
	mock.Mock
}

func (m *MockGeocodeRepository) Geocode(ctx context.Context, address string) (*domain.Point, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Point), args.Error(1)
}

type MockPOIRepository struct {
	mock.Mock
}

func (m *MockPOIRepository) SearchAround(ctx context.Context, lat, lon float64, radiusM int) ([]domain.POI, error) {
	args := m.Called(ctx, lat, lon, radiusM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.POI), args.Error(1)
}

func newNearbyUseCase(geo *MockGeocodeRepository, poi *MockPOIRepository) *usecase.NearbyUseCase {
	return usecase.NewNearbyUseCase(geo, poi, nil, zap.NewNop(),
		24*time.Hour, 10*time.Minute, 300)
}

func TestNearbyUseCase_Geocode(t *testing.T) {
	t.Run("empty address", func(t *testing.T) {
		uc := newNearbyUseCase(new(MockGeocodeRepository), new(MockPOIRepository))

		_, err := uc.Geocode(context.Background(), "")

		assert.ErrorIs(t, err, errors.ErrAddressRequired)
	})

	t.Run("success", func(t *testing.T) {
		geo := new(MockGeocodeRepository)
		geo.On("Geocode", mock.Anything, "Tverskaya 1, Moscow").
			Return(&domain.Point{Lat: 55.7558, Lon: 37.6176}, nil)
		uc := newNearbyUseCase(geo, new(MockPOIRepository))

		point, err := uc.Geocode(context.Background(), "Tverskaya 1, Moscow")

		require.NoError(t, err)
		assert.InDelta(t, 55.7558, point.Lat, 1e-9)
		assert.InDelta(t, 37.6176, point.Lon, 1e-9)
		geo.AssertExpectations(t)
	})

	t.Run("not found passes through", func(t *testing.T) {
		geo := new(MockGeocodeRepository)
		geo.On("Geocode", mock.Anything, "nowhere at all").
			Return(nil, errors.ErrAddressNotFound)
		uc := newNearbyUseCase(geo, new(MockPOIRepository))

		_, err := uc.Geocode(context.Background(), "nowhere at all")

		assert.ErrorIs(t, err, errors.ErrAddressNotFound)
	})
}

func TestNearbyUseCase_Nearby(t *testing.T) {
	pois := []domain.POI{
		{ID: 1, Lat: 55.75, Lon: 37.61, Name: "Coffee Point", Category: "cafe", DistanceM: 40},
		{ID: 2, Lat: 55.75, Lon: 37.61, Name: "Pyaterochka", Category: "supermarket", DistanceM: 120},
		{ID: 3, Lat: 55.75, Lon: 37.61, Name: "Gorky Park", Category: "park", DistanceM: 250},
	}

	t.Run("invalid coordinates", func(t *testing.T) {
		uc := newNearbyUseCase(new(MockGeocodeRepository), new(MockPOIRepository))

		_, err := uc.Nearby(context.Background(), 91, 0, 300)
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)

		_, err = uc.Nearby(context.Background(), 0, -181, 300)
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
	})

	t.Run("invalid radius", func(t *testing.T) {
		uc := newNearbyUseCase(new(MockGeocodeRepository), new(MockPOIRepository))

		_, err := uc.Nearby(context.Background(), 55.75, 37.61, 9)
		assert.ErrorIs(t, err, errors.ErrInvalidRadius)

		_, err = uc.Nearby(context.Background(), 55.75, 37.61, 5001)
		assert.ErrorIs(t, err, errors.ErrInvalidRadius)
	})

	t.Run("zero radius uses default", func(t *testing.T) {
		poi := new(MockPOIRepository)
		poi.On("SearchAround", mock.Anything, 55.75, 37.61, 300).Return(pois, nil)
		uc := newNearbyUseCase(new(MockGeocodeRepository), poi)

		resp, err := uc.Nearby(context.Background(), 55.75, 37.61, 0)

		require.NoError(t, err)
		assert.Equal(t, 3, resp.Total)
		poi.AssertExpectations(t)
	})

	t.Run("aggregates groups and top categories", func(t *testing.T) {
		poi := new(MockPOIRepository)
		poi.On("SearchAround", mock.Anything, 55.75, 37.61, 500).Return(pois, nil)
		uc := newNearbyUseCase(new(MockGeocodeRepository), poi)

		resp, err := uc.Nearby(context.Background(), 55.75, 37.61, 500)

		require.NoError(t, err)
		assert.Equal(t, domain.GroupCounts{Food: 1, Groceries: 1, Parks: 1}, resp.Groups)
		assert.Len(t, resp.TopCategories, 3)
		assert.Len(t, resp.POIs, 3)
	})

	t.Run("provider failure passes through", func(t *testing.T) {
		poi := new(MockPOIRepository)
		poi.On("SearchAround", mock.Anything, 55.75, 37.61, 300).
			Return(nil, errors.ErrPOIServiceUnavailable)
		uc := newNearbyUseCase(new(MockGeocodeRepository), poi)

		_, err := uc.Nearby(context.Background(), 55.75, 37.61, 300)

		assert.ErrorIs(t, err, errors.ErrPOIServiceUnavailable)
	})
}
