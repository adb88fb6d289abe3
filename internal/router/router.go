package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mensahub/backend/internal/api"
	"github.com/mensahub/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	menuHandler *api.MenuHandler,
	preferenceHandler *api.PreferenceHandler,
	recommendationHandler *api.RecommendationHandler,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "mensa-backend"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	menuHandler.RegisterRoutes(v1)
	preferenceHandler.RegisterRoutes(v1)
	recommendationHandler.RegisterRoutes(v1)

	return router
}
