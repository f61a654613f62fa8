package main

import (
	"fmt"
	"log"

	actionHandlers "github.com/architect/eco-tracker/internal/actions/handlers"
	actionModels "github.com/architect/eco-tracker/internal/actions/models"
	authHandlers "github.com/architect/eco-tracker/internal/auth/handlers"
	authModels "github.com/architect/eco-tracker/internal/auth/models"
	authServices "github.com/architect/eco-tracker/internal/auth/services"
	"github.com/architect/eco-tracker/internal/common/database"
	commonHandlers "github.com/architect/eco-tracker/internal/common/handlers"
	"github.com/architect/eco-tracker/internal/common/health"
	"github.com/architect/eco-tracker/internal/common/middleware"
	weatherHandlers "github.com/architect/eco-tracker/internal/weather/handlers"
	weatherServices "github.com/architect/eco-tracker/internal/weather/services"
	"github.com/architect/eco-tracker/pkg/config"
	"github.com/architect/eco-tracker/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database (SQLite for development, PostgreSQL for production)
	if err := database.InitWithType(cfg.Database.Type, cfg.Database.DSN); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(&authModels.User{}, &actionModels.SustainableAction{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Wire token signing and the upstream weather client
	authServices.InitTokens(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	weatherServices.Init(cfg.Weather.APIKey, cfg.Weather.BaseURL)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin engine
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ErrorHandler())

	// Health check endpoints
	healthChecker := health.NewHealthChecker(database.GetDB(), "1.0.0")
	healthHandler := commonHandlers.NewHealthHandler(healthChecker)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/readiness", healthHandler.Readiness)
	router.GET("/health/liveness", healthHandler.Liveness)
	router.GET("/health/metrics", healthHandler.Metrics)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandlers.Register)
			authGroup.POST("/login", authHandlers.Login)
		}

		actionsGroup := v1.Group("/actions", middleware.AuthRequired())
		{
			actionsGroup.POST("", actionHandlers.CreateAction)
			actionsGroup.GET("", actionHandlers.GetUserActions)
			actionsGroup.GET("/date-range", actionHandlers.GetActionsByDateRange)
			actionsGroup.GET("/stats", actionHandlers.GetUserStats)
			actionsGroup.PUT("/:id", actionHandlers.UpdateAction)
			actionsGroup.DELETE("/:id", actionHandlers.DeleteAction)
		}

		weatherGroup := v1.Group("/weather")
		{
			weatherGroup.GET("/coordinates", weatherHandlers.GetWeatherByCoordinates)
			weatherGroup.GET("/city", weatherHandlers.GetWeatherByCity)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting eco-tracker server",
		zap.String("address", address),
		zap.String("env", cfg.Server.Env),
		zap.String("db_type", cfg.Database.Type),
	)

	if err := router.Run(address); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
