package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/pairprep/pairprep/internal/pkg/config"
	"github.com/pairprep/pairprep/internal/pkg/database"
	"github.com/pairprep/pairprep/internal/pkg/health"
	"github.com/pairprep/pairprep/internal/pkg/logger"
	"github.com/pairprep/pairprep/internal/pkg/metrics"
	"github.com/pairprep/pairprep/internal/pkg/middleware"
	"github.com/pairprep/pairprep/internal/pkg/nats"
	"github.com/pairprep/pairprep/internal/pkg/server"
	"github.com/pairprep/pairprep/services/match/gateway"
	"github.com/pairprep/pairprep/services/match/handler"
	"github.com/pairprep/pairprep/services/match/repository"
	"github.com/pairprep/pairprep/services/match/usecase"
)

func main() {
	appName := "pairprep-match"
	configPath := "config/match.env"
	configs := config.InitConfig(configPath)

	// Initialize logger
	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repository
	matchRepo := repository.NewMatchRepository(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	matchGW := gateway.NewMatchGW(configs, natsClient)

	// Initialize usecase
	matchUC := usecase.NewMatchUC(configs, usecase.FirstLanguageStrategy{}, matchRepo, matchGW)

	// Initialize handlers
	h := handler.NewHandler(matchUC)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RequestLoggerMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Prometheus metrics
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Register service routes
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(configs.APIKey)
	h.RegisterRoutes(e, apiKeyMiddleware)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
