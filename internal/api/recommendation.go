package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mensahub/backend/internal/service"
)

// defaultCanteen is used when the caller does not name one.
const defaultCanteen = "mensa-garching"

// RecommendationHandler handles meal recommendation requests
type RecommendationHandler struct {
	recommendationService service.IRecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler instance
func NewRecommendationHandler(recommendationService service.IRecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// RegisterRoutes registers the recommendation routes
func (h *RecommendationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users/:userId/recommendation", h.GetRecommendation)
}

// GetRecommendation recommends one meal from today's menu for the user.
// Engine failures never surface here: the recommendation client degrades
// them to its sentinel response, so this endpoint only errors when the
// inputs (favorites, menu) cannot be gathered.
func (h *RecommendationHandler) GetRecommendation(c *gin.Context) {
	userID := c.Param("userId")
	canteen := c.DefaultQuery("canteen", defaultCanteen)

	resp, err := h.recommendationService.RecommendToday(c.Request.Context(), userID, canteen)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recommendation: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
