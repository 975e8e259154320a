package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/neighborhood-service/internal/config"
	"github.com/neighborhood-service/internal/domain"
	"github.com/neighborhood-service/internal/domain/repository"
	"github.com/neighborhood-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// NewClient создает клиент Nominatim-совместимого геокодера
func NewClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.GeocodeRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Nominatim возвращает lat/lon строками
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode возвращает координаты первого результата поиска по адресу
func (c *client) Geocode(ctx context.Context, address string) (*domain.Point, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("Calling geocoder", zap.String("address", address))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, errors.ErrGeocodeUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Geocoder returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrGeocodeUnavailable
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, errors.ErrGeocodeUnavailable
	}

	if len(results) == 0 {
		return nil, errors.ErrAddressNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse longitude %q: %w", results[0].Lon, err)
	}

	c.logger.Debug("Geocoder resolved address",
		zap.String("address", address),
		zap.Float64("lat", lat),
		zap.Float64("lon", lon))

	return &domain.Point{Lat: lat, Lon: lon}, nil
}
