package api

import (
	"github.com/exitsim/exit-value-estimator/internal/api/handlers"
	"github.com/exitsim/exit-value-estimator/internal/api/middleware"
	"github.com/exitsim/exit-value-estimator/internal/config"
	"github.com/exitsim/exit-value-estimator/internal/logging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires middleware and routes.
func NewRouter(settings *config.Settings, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !settings.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(logger))
	router.Use(logging.RequestID())
	router.Use(logging.GinLogger(logger))
	router.Use(middleware.CORS(settings.Server.AllowedOrigins))

	simulationHandler := handlers.NewSimulationHandler(settings, logger)

	router.GET("/health", handlers.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/defaults", simulationHandler.GetDefaults)
		api.POST("/simulations", simulationHandler.RunSimulation)
	}

	return router
}
