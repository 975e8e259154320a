package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/neighborhood-service/internal/pkg/utils"
	"github.com/neighborhood-service/internal/pkg/validator"
	"github.com/neighborhood-service/internal/usecase"
	"github.com/neighborhood-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// RatingHandler - обработчик запросов оценки района
type RatingHandler struct {
	ratingUC   *usecase.RatingUseCase
	evaluateUC *usecase.EvaluateUseCase
	logger     *zap.Logger
}

// NewRatingHandler - создание нового RatingHandler
func NewRatingHandler(ratingUC *usecase.RatingUseCase, evaluateUC *usecase.EvaluateUseCase, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{
		ratingUC:   ratingUC,
		evaluateUC: evaluateUC,
		logger:     logger,
	}
}

// Rate - оценка района по готовому списку POI
func (h *RatingHandler) Rate(c *fiber.Ctx) error {
	var req dto.RateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.ratingUC.Rate(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Evaluate - полный цикл оценки по адресу
func (h *RatingHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.evaluateUC.Evaluate(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
