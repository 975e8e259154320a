package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/neighborhood-service/internal/domain"
	"github.com/neighborhood-service/internal/domain/repository"
	"go.uber.org/zap"
)

// GenerativeStrategy делегирует оценку внешнему текстовому сервису.
// Одна попытка без повторов: любой сбой или невалидный ответ
// превращается в fallback-исход.
type GenerativeStrategy struct {
	llm    repository.LLMRepository
	logger *zap.Logger
}

func NewGenerativeStrategy(llm repository.LLMRepository, logger *zap.Logger) *GenerativeStrategy {
	return &GenerativeStrategy{
		llm:    llm,
		logger: logger,
	}
}

// GenerativeOutcome - исход генеративной стратегии: либо результат,
// либо причина, по которой нужен fallback на эвристику.
type GenerativeOutcome struct {
	Result         *domain.RatingResult
	FallbackReason string
}

func (o GenerativeOutcome) NeedsFallback() bool {
	return o.Result == nil
}

func ok(result *domain.RatingResult) GenerativeOutcome {
	return GenerativeOutcome{Result: result}
}

func needsFallback(reason string) GenerativeOutcome {
	return GenerativeOutcome{FallbackReason: reason}
}

// Evaluate строит prompt, вызывает внешний сервис и валидирует ответ.
// Успех: ответ парсится как JSON и содержит ключ ratings.
func (s *GenerativeStrategy) Evaluate(
	ctx context.Context,
	agg domain.Aggregate,
	prefs domain.Preferences,
	address string,
	radiusM int,
) GenerativeOutcome {
	prompt := buildRatingPrompt(agg.Groups, prefs, address, radiusM)

	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return needsFallback(fmt.Sprintf("llm call failed: %v", err))
	}

	result, err := parseRatingResponse(raw)
	if err != nil {
		s.logger.Warn("Discarding malformed llm response",
			zap.String("provider", s.llm.Name()),
			zap.Error(err))
		return needsFallback(fmt.Sprintf("malformed llm response: %v", err))
	}

	return ok(result)
}

// buildRatingPrompt собирает структурированный prompt: счётчики групп,
// предпочтения, адрес и радиус, с требованием вернуть только
// минифицированный JSON нужной формы.
func buildRatingPrompt(counts domain.GroupCounts, prefs domain.Preferences, address string, radiusM int) string {
	var b strings.Builder
	b.WriteString("You are rating how well a neighborhood fits a person's lifestyle.\n\n")
	fmt.Fprintf(&b, "Area: %q, radius %d meters.\n", address, radiusM)
	b.WriteString("Points of interest found in the area:\n")
	fmt.Fprintf(&b, "- dining places (restaurants, cafes, fast food): %d\n", counts.Food)
	fmt.Fprintf(&b, "- grocery stores: %d\n", counts.Groceries)
	fmt.Fprintf(&b, "- parks and green areas: %d\n", counts.Parks)
	fmt.Fprintf(&b, "- fuel stations: %d\n", counts.Fuel)
	b.WriteString("\nThe person's preferences:\n")
	fmt.Fprintf(&b, "- staying to %s here\n", prefs.StayType)
	fmt.Fprintf(&b, "- eats out: %s\n", prefs.EatOut)
	fmt.Fprintf(&b, "- shops for groceries: %s\n", prefs.Groceries)
	fmt.Fprintf(&b, "- need for parks: %s\n", prefs.ParksNeed)
	b.WriteString("\nRespond with ONLY a minified JSON object, no markdown, no commentary, in this exact shape:\n")
	b.WriteString(`{"summary":"...","verdict":"great|good|neutral|poor","overallScore":0,` +
		`"ratings":{"food":{"score":0,"reason":"..."},"groceries":{"score":0,"reason":"..."},` +
		`"parks":{"score":0,"reason":"..."},"fuel":{"score":0,"reason":"..."}}}` + "\n")
	b.WriteString("Scores are integers from 0 to 10. Reasons are one sentence each.\n")
	return b.String()
}

// ответ модели: ratings обязателен, остальное может отсутствовать
type ratingResponse struct {
	Summary      string          `json:"summary"`
	Verdict      domain.Verdict  `json:"verdict"`
	OverallScore int             `json:"overallScore"`
	Ratings      *domain.Ratings `json:"ratings"`
}

// parseRatingResponse валидирует ответ модели. Ошибка на любом
// несоответствии: не-JSON, JSON без ratings.
func parseRatingResponse(raw string) (*domain.RatingResult, error) {
	cleaned := stripCodeFences(raw)

	var resp ratingResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if resp.Ratings == nil {
		return nil, fmt.Errorf("response JSON has no ratings key")
	}

	ratings := *resp.Ratings
	ratings.Food.Score = clampScore(ratings.Food.Score)
	ratings.Groceries.Score = clampScore(ratings.Groceries.Score)
	ratings.Parks.Score = clampScore(ratings.Parks.Score)
	ratings.Fuel.Score = clampScore(ratings.Fuel.Score)

	overall := clampScore(resp.OverallScore)
	verdict := resp.Verdict
	switch verdict {
	case domain.VerdictGreat, domain.VerdictGood, domain.VerdictNeutral, domain.VerdictPoor:
	default:
		verdict = domain.VerdictForScore(overall)
	}

	return &domain.RatingResult{
		Summary:      resp.Summary,
		Verdict:      verdict,
		OverallScore: overall,
		Ratings:      ratings,
	}, nil
}

// stripCodeFences убирает обёртку ```json ... ```, которую модели
// добавляют вопреки инструкции
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
