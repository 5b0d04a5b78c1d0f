package http

import (
	"github.com/gin-gonic/gin"

	"github.com/bigappetite/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Upload page and health check
	router.GET("/", handler.Home)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		foodcost := v1.Group("/foodcost")
		{
			foodcost.POST("/upload", handler.Upload)
			foodcost.GET("/results", handler.Results)
			foodcost.GET("/query", handler.Query)
		}
	}

	return router
}
