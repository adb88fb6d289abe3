package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mensahub/backend/internal/service"
	"github.com/mensahub/backend/internal/types"
)

// PreferenceHandler handles favorite-meal requests
type PreferenceHandler struct {
	preferenceService service.IPreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler instance
func NewPreferenceHandler(preferenceService service.IPreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// RegisterRoutes registers the preference routes
func (h *PreferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	prefs := router.Group("/users/:userId/preferences")
	{
		prefs.GET("", h.ListFavorites)
		prefs.POST("", h.AddFavorite)
		prefs.DELETE("/:mealName", h.RemoveFavorite)
	}
}

// ListFavorites returns the user's favorite meals
func (h *PreferenceHandler) ListFavorites(c *gin.Context) {
	userID := c.Param("userId")

	favorites, err := h.preferenceService.GetFavorites(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.FavoritesResponse{UserID: userID, Favorites: favorites})
}

// AddFavorite adds a meal to the user's favorites
func (h *PreferenceHandler) AddFavorite(c *gin.Context) {
	userID := c.Param("userId")

	var req types.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.preferenceService.AddFavorite(c.Request.Context(), userID, req.MealName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user_id": userID, "meal_name": req.MealName})
}

// RemoveFavorite removes a meal from the user's favorites
func (h *PreferenceHandler) RemoveFavorite(c *gin.Context) {
	userID := c.Param("userId")
	mealName := c.Param("mealName")

	if err := h.preferenceService.RemoveFavorite(c.Request.Context(), userID, mealName); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "favorite meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite: " + err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
