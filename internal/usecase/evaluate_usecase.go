package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/neighborhood-service/internal/domain"
	"github.com/neighborhood-service/internal/pkg/errors"
	"github.com/neighborhood-service/internal/pkg/utils"
	"github.com/neighborhood-service/internal/usecase/dto"
)

// EvaluateUseCase - полный цикл: адрес -> координаты -> POI -> оценка
type EvaluateUseCase struct {
	nearbyUC *NearbyUseCase
	ratingUC *RatingUseCase
	logger   *zap.Logger
}

// NewEvaluateUseCase - создание нового EvaluateUseCase
func NewEvaluateUseCase(nearbyUC *NearbyUseCase, ratingUC *RatingUseCase, logger *zap.Logger) *EvaluateUseCase {
	return &EvaluateUseCase{
		nearbyUC: nearbyUC,
		ratingUC: ratingUC,
		logger:   logger,
	}
}

// Evaluate выполняет полный цикл оценки района по адресу
func (uc *EvaluateUseCase) Evaluate(ctx context.Context, req dto.EvaluateRequest) (*dto.EvaluateResponse, error) {
	radiusM := req.Radius
	if radiusM == 0 {
		radiusM = uc.nearbyUC.DefaultRadiusM()
	}
	if !utils.ValidateRadiusM(radiusM) {
		return nil, errors.ErrInvalidRadius
	}

	point, err := uc.nearbyUC.Geocode(ctx, req.Address)
	if err != nil {
		return nil, err
	}

	pois, err := uc.nearbyUC.searchAround(ctx, point.Lat, point.Lon, radiusM)
	if err != nil {
		return nil, err
	}

	prefs := req.Preferences.ToDomain()
	agg := domain.AggregatePOIs(pois)
	rating := uc.ratingUC.RateAggregate(ctx, agg, prefs, req.Address, radiusM)

	uc.logger.Info("Neighborhood evaluated",
		zap.String("address", req.Address),
		zap.Int("radius_m", radiusM),
		zap.Int("facilities", agg.Total),
		zap.Int("overall_score", rating.OverallScore),
		zap.String("verdict", string(rating.Verdict)))

	return &dto.EvaluateResponse{
		Coordinates:   *point,
		Total:         agg.Total,
		Groups:        agg.Groups,
		TopCategories: agg.TopCategories(),
		Rating:        rating,
	}, nil
}
