package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/neighborhood-service/internal/domain"
	"github.com/neighborhood-service/internal/domain/repository"
	"github.com/neighborhood-service/internal/usecase/dto"
)

// RatingUseCase - оркестратор оценки района. Два состояния:
// генеративная стратегия настроена (llm != nil) или только эвристика.
// Это единственное место, где действует fallback-правило движка.
type RatingUseCase struct {
	generative *GenerativeStrategy
	heuristic  *HeuristicStrategy
	logger     *zap.Logger
}

// NewRatingUseCase - создание нового RatingUseCase.
// llm == nil означает режим "только эвристика".
func NewRatingUseCase(llm repository.LLMRepository, logger *zap.Logger) *RatingUseCase {
	uc := &RatingUseCase{
		heuristic: NewHeuristicStrategy(),
		logger:    logger,
	}
	if llm != nil {
		uc.generative = NewGenerativeStrategy(llm, logger)
	}
	return uc
}

// Rate оценивает район по готовому списку POI.
// Отсутствующий список трактуется как пустой: оценка нулевых счётчиков -
// валидный результат, а не ошибка.
func (uc *RatingUseCase) Rate(ctx context.Context, req dto.RateRequest) (*domain.RatingResult, error) {
	prefs := req.Preferences.ToDomain()
	agg := domain.AggregatePOIs(req.Facilities)

	uc.logger.Debug("Rating neighborhood",
		zap.Int("facilities", agg.Total),
		zap.Int("food", agg.Groups.Food),
		zap.Int("groceries", agg.Groups.Groceries),
		zap.Int("parks", agg.Groups.Parks),
		zap.Int("fuel", agg.Groups.Fuel))

	return uc.rate(ctx, agg, prefs, req.Address, req.Radius), nil
}

// RateAggregate оценивает уже агрегированные POI (используется полным циклом)
func (uc *RatingUseCase) RateAggregate(
	ctx context.Context,
	agg domain.Aggregate,
	prefs domain.Preferences,
	address string,
	radiusM int,
) *domain.RatingResult {
	return uc.rate(ctx, agg, prefs, address, radiusM)
}

// rate реализует fallback-контракт: одна попытка генеративной стратегии,
// при любом сбое - эвристика с пометкой provider=fallback. Когда
// генеративная стратегия не настроена, пометка отсутствует.
func (uc *RatingUseCase) rate(
	ctx context.Context,
	agg domain.Aggregate,
	prefs domain.Preferences,
	address string,
	radiusM int,
) *domain.RatingResult {
	if uc.generative == nil {
		return uc.heuristic.Evaluate(agg, prefs)
	}

	outcome := uc.generative.Evaluate(ctx, agg, prefs, address, radiusM)
	if !outcome.NeedsFallback() {
		return outcome.Result
	}

	uc.logger.Warn("Generative rating failed, falling back to heuristic",
		zap.String("reason", outcome.FallbackReason))

	result := uc.heuristic.Evaluate(agg, prefs)
	result.Provider = domain.ProviderFallback
	return result
}
