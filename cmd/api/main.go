package main

// @title Neighborhood Service API
// @version 1.0.0
// @description Сервис оценки района по точкам интереса из OpenStreetMap.
// @description
// @description Основные возможности:
// @description - Геокодирование адреса (Nominatim-совместимый сервис)
// @description - Поиск точек интереса вокруг координат (Overpass-совместимый сервис)
// @description - Персонализированная оценка района по четырём измерениям (еда, продукты, парки, заправки)
// @description - Генеративная стратегия оценки с детерминированным fallback

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/neighborhood-service/docs"
	"github.com/neighborhood-service/internal/config"
	httpDelivery "github.com/neighborhood-service/internal/delivery/http"
	"github.com/neighborhood-service/internal/delivery/http/handler"
	"github.com/neighborhood-service/internal/domain/repository"
	"github.com/neighborhood-service/internal/infrastructure/llm"
	"github.com/neighborhood-service/internal/infrastructure/nominatim"
	"github.com/neighborhood-service/internal/infrastructure/overpass"
	"github.com/neighborhood-service/internal/pkg/logger"
	"github.com/neighborhood-service/internal/repository/cache"
	"github.com/neighborhood-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Neighborhood Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to Redis (optional - service runs without cache)
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Redis.Host != "" {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis cache enabled")
	} else {
		log.Info("Redis not configured, running without cache")
	}

	// 4. Initialize external clients
	geocodeRepo := nominatim.NewClient(&cfg.Geocoder, log)
	poiRepo := overpass.NewClient(&cfg.Discovery, log)

	var llmRepo repository.LLMRepository
	if cfg.LLM.APIKey != "" {
		llmRepo = llm.NewClient(&cfg.LLM, log)
		log.Info("Generative rating enabled", zap.String("model", cfg.LLM.Model))
	} else {
		log.Info("No LLM credential configured, heuristic rating only")
	}

	// 5. Initialize Use Cases
	nearbyUC := usecase.NewNearbyUseCase(
		geocodeRepo,
		poiRepo,
		cacheRepo,
		log,
		cfg.Cache.GeocodeCacheTTL,
		cfg.Cache.NearbyCacheTTL,
		cfg.Discovery.DefaultRadiusM,
	)

	ratingUC := usecase.NewRatingUseCase(llmRepo, log)
	evaluateUC := usecase.NewEvaluateUseCase(nearbyUC, ratingUC, log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	geoHandler := handler.NewGeoHandler(nearbyUC, log)
	ratingHandler := handler.NewRatingHandler(ratingUC, evaluateUC, log)

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, geoHandler, ratingHandler)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
