package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neighborhood-service/internal/domain"
	"github.com/neighborhood-service/internal/usecase"
	"github.com/neighborhood-service/internal/usecase/dto"
)

// MockLLMRepository - мок внешнего текстового сервиса
type MockLLMRepository struct {
	mock.Mock
}

func (m *MockLLMRepository) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockLLMRepository) Name() string {
	return "mock"
}

const validLLMResponse = `{"summary":"A lively block with everything at hand.","verdict":"great",` +
	`"overallScore":9,"ratings":{"food":{"score":9,"reason":"Lots of restaurants."},` +
	`"groceries":{"score":8,"reason":"Two supermarkets close by."},` +
	`"parks":{"score":7,"reason":"One decent park."},` +
	`"fuel":{"score":9,"reason":"Several stations."}}}`

func testFacilities() []domain.POI {
	return []domain.POI{
		{ID: 1, Lat: 55.75, Lon: 37.61, Category: "cafe"},
		{ID: 2, Lat: 55.75, Lon: 37.61, Category: "restaurant"},
		{ID: 3, Lat: 55.75, Lon: 37.61, Category: "supermarket"},
		{ID: 4, Lat: 55.75, Lon: 37.61, Category: "park"},
	}
}

func TestRatingUseCase_HeuristicOnly(t *testing.T) {
	uc := usecase.NewRatingUseCase(nil, zap.NewNop())

	result, err := uc.Rate(context.Background(), dto.RateRequest{Facilities: testFacilities()})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Provider, "no provider tag without a generative strategy")
	assert.NotEmpty(t, result.Summary)
}

func TestRatingUseCase_GenerativeSuccess(t *testing.T) {
	llm := new(MockLLMRepository)
	llm.On("Complete", mock.Anything, mock.Anything).Return(validLLMResponse, nil)

	uc := usecase.NewRatingUseCase(llm, zap.NewNop())
	result, err := uc.Rate(context.Background(), dto.RateRequest{Facilities: testFacilities()})

	require.NoError(t, err)
	assert.Empty(t, result.Provider)
	assert.Equal(t, "A lively block with everything at hand.", result.Summary)
	assert.Equal(t, domain.VerdictGreat, result.Verdict)
	assert.Equal(t, 9, result.OverallScore)
	assert.Equal(t, 8, result.Ratings.Groceries.Score)
	llm.AssertExpectations(t)
}

func TestRatingUseCase_GenerativeCodeFences(t *testing.T) {
	llm := new(MockLLMRepository)
	llm.On("Complete", mock.Anything, mock.Anything).
		Return("```json\n"+validLLMResponse+"\n```", nil)

	uc := usecase.NewRatingUseCase(llm, zap.NewNop())
	result, err := uc.Rate(context.Background(), dto.RateRequest{Facilities: testFacilities()})

	require.NoError(t, err)
	assert.Empty(t, result.Provider)
	assert.Equal(t, 9, result.OverallScore)
}

func TestRatingUseCase_FallbackOnFailure(t *testing.T) {
	cases := []struct {
		name     string
		response string
		err      error
	}{
		{name: "transport error", err: errors.New("connection refused")},
		{name: "not json", response: "not json"},
		{name: "json without ratings", response: `{"foo":1}`},
		{name: "empty response", response: ""},
	}

	heuristic := usecase.NewHeuristicStrategy()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			llm := new(MockLLMRepository)
			llm.On("Complete", mock.Anything, mock.Anything).Return(tc.response, tc.err)

			uc := usecase.NewRatingUseCase(llm, zap.NewNop())
			result, err := uc.Rate(context.Background(), dto.RateRequest{Facilities: testFacilities()})

			require.NoError(t, err)
			assert.Equal(t, domain.ProviderFallback, result.Provider)

			// при сбое результат совпадает с чистой эвристикой
			expected := heuristic.Evaluate(domain.AggregatePOIs(testFacilities()), domain.DefaultPreferences())
			assert.Equal(t, expected.Ratings, result.Ratings)
			assert.Equal(t, expected.OverallScore, result.OverallScore)
			assert.Equal(t, expected.Verdict, result.Verdict)
			assert.Equal(t, expected.Summary, result.Summary)

			llm.AssertNumberOfCalls(t, "Complete", 1)
		})
	}
}

func TestRatingUseCase_InvalidScoresClamped(t *testing.T) {
	llm := new(MockLLMRepository)
	llm.On("Complete", mock.Anything, mock.Anything).Return(
		`{"summary":"ok","verdict":"made-up","overallScore":42,`+
			`"ratings":{"food":{"score":15,"reason":"a"},"groceries":{"score":-3,"reason":"b"},`+
			`"parks":{"score":5,"reason":"c"},"fuel":{"score":10,"reason":"d"}}}`, nil)

	uc := usecase.NewRatingUseCase(llm, zap.NewNop())
	result, err := uc.Rate(context.Background(), dto.RateRequest{Facilities: testFacilities()})

	require.NoError(t, err)
	assert.Empty(t, result.Provider, "clampable response is not a failure")
	assert.Equal(t, 10, result.OverallScore)
	assert.Equal(t, 10, result.Ratings.Food.Score)
	assert.Equal(t, 0, result.Ratings.Groceries.Score)
	// неизвестный вердикт выводится из итогового балла
	assert.Equal(t, domain.VerdictGreat, result.Verdict)
}

func TestRatingUseCase_MissingFacilities(t *testing.T) {
	uc := usecase.NewRatingUseCase(nil, zap.NewNop())

	result, err := uc.Rate(context.Background(), dto.RateRequest{})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.Ratings.Groceries.Score)
}

func TestRatingUseCase_PromptContainsCounts(t *testing.T) {
	llm := new(MockLLMRepository)
	llm.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "dining places (restaurants, cafes, fast food): 2") &&
			strings.Contains(prompt, "grocery stores: 1") &&
			strings.Contains(prompt, "parks and green areas: 1") &&
			strings.Contains(prompt, "eats out: sometimes")
	})).Return(validLLMResponse, nil)

	uc := usecase.NewRatingUseCase(llm, zap.NewNop())
	_, err := uc.Rate(context.Background(), dto.RateRequest{Facilities: testFacilities()})

	require.NoError(t, err)
	llm.AssertExpectations(t)
}
