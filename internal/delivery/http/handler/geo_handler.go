package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/neighborhood-service/internal/pkg/utils"
	"github.com/neighborhood-service/internal/usecase"
	"github.com/neighborhood-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// GeoHandler - обработчик геокодирования и поиска POI
type GeoHandler struct {
	nearbyUC *usecase.NearbyUseCase
	logger   *zap.Logger
}

// NewGeoHandler - создание нового GeoHandler
func NewGeoHandler(nearbyUC *usecase.NearbyUseCase, logger *zap.Logger) *GeoHandler {
	return &GeoHandler{
		nearbyUC: nearbyUC,
		logger:   logger,
	}
}

// Geocode - получение координат по адресу
func (h *GeoHandler) Geocode(c *fiber.Ctx) error {
	address := c.Query("address")

	point, err := h.nearbyUC.Geocode(c.Context(), address)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.GeocodeResponse{
		Lat: point.Lat,
		Lon: point.Lon,
	}, nil)
}

// Nearby - поиск POI вокруг точки
func (h *GeoHandler) Nearby(c *fiber.Ctx) error {
	lat := c.QueryFloat("lat")
	lon := c.QueryFloat("lon")
	radiusM := c.QueryInt("radius")

	result, err := h.nearbyUC.Nearby(c.Context(), lat, lon, radiusM)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
