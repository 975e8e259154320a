package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/neighborhood-service/internal/config"
	"github.com/neighborhood-service/internal/delivery/http/handler"
	"github.com/neighborhood-service/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	geoHandler    *handler.GeoHandler
	ratingHandler *handler.RatingHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	geoHandler *handler.GeoHandler,
	ratingHandler *handler.RatingHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Neighborhood Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		geoHandler:    geoHandler,
		ratingHandler: ratingHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Geo routes
	api.Get("/geocode", s.geoHandler.Geocode)
	api.Get("/nearby", s.geoHandler.Nearby)

	// Rating routes
	api.Post("/rate", s.ratingHandler.Rate)
	api.Post("/evaluate", s.ratingHandler.Evaluate)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
