package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/neighborhood-service/internal/config"
	"github.com/neighborhood-service/internal/domain"
	"github.com/neighborhood-service/internal/domain/repository"
	"github.com/neighborhood-service/internal/pkg/errors"
	"github.com/umahmood/haversine"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает клиент Overpass-совместимого источника POI
func NewClient(cfg *config.DiscoveryConfig, logger *zap.Logger) repository.POIRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

type overpassResponse struct {
	Elements []domain.RawElement `json:"elements"`
}

// SearchAround запрашивает node/way/relation в радиусе вокруг точки
// для всех категорий, участвующих в оценке, и возвращает POI,
// отсортированные по расстоянию от центра.
func (c *client) SearchAround(ctx context.Context, lat, lon float64, radiusM int) ([]domain.POI, error) {
	query := buildQuery(lat, lon, radiusM)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(query))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	c.logger.Debug("Calling POI discovery",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Int("radius_m", radiusM))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, errors.ErrPOIServiceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("POI discovery returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrPOIServiceUnavailable
	}

	var overpassResp overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&overpassResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, errors.ErrPOIServiceUnavailable
	}

	center := haversine.Coord{Lat: lat, Lon: lon}
	pois := make([]domain.POI, 0, len(overpassResp.Elements))
	dropped := 0
	for _, el := range overpassResp.Elements {
		poi, ok := domain.FromRawElement(el)
		if !ok {
			// элемент без координат не несёт пространственного смысла
			dropped++
			continue
		}
		_, km := haversine.Distance(center, haversine.Coord{Lat: poi.Lat, Lon: poi.Lon})
		poi.DistanceM = math.Round(km * 1000)
		pois = append(pois, poi)
	}

	sort.Slice(pois, func(i, j int) bool {
		return pois[i].DistanceM < pois[j].DistanceM
	})

	c.logger.Debug("POI discovery completed",
		zap.Int("found", len(pois)),
		zap.Int("dropped_no_coords", dropped))

	return pois, nil
}

// buildQuery собирает Overpass QL запрос по таблицам категорий движка
func buildQuery(lat, lon float64, radiusM int) string {
	amenities := append(append([]string{}, domain.FoodCategories...), domain.FuelCategories...)
	amenityRe := categoryRegex(amenities)
	shopRe := categoryRegex(domain.GroceryCategories)
	leisureRe := categoryRegex(domain.ParkCategories)

	var b strings.Builder
	b.WriteString("[out:json][timeout:25];\n(\n")
	for _, kind := range []string{"node", "way", "relation"} {
		fmt.Fprintf(&b, "  %s(around:%d,%f,%f)[amenity~\"%s\"];\n", kind, radiusM, lat, lon, amenityRe)
		fmt.Fprintf(&b, "  %s(around:%d,%f,%f)[shop~\"%s\"];\n", kind, radiusM, lat, lon, shopRe)
		fmt.Fprintf(&b, "  %s(around:%d,%f,%f)[leisure~\"%s\"];\n", kind, radiusM, lat, lon, leisureRe)
	}
	b.WriteString(");\nout center;\n")
	return b.String()
}

func categoryRegex(categories []string) string {
	return "^(" + strings.Join(categories, "|") + ")$"
}
