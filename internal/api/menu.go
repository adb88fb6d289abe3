package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mensahub/backend/internal/service"
)

// MenuHandler handles canteen menu requests
type MenuHandler struct {
	menuService service.IMenuService
}

// NewMenuHandler creates a new MenuHandler instance
func NewMenuHandler(menuService service.IMenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// RegisterRoutes registers the menu routes
func (h *MenuHandler) RegisterRoutes(router *gin.RouterGroup) {
	canteens := router.Group("/canteens")
	{
		canteens.GET("/:canteen/today", h.GetTodayMeals)
	}
}

// GetTodayMeals returns today's dishes for a canteen. An empty menu is a
// 204, not an error.
func (h *MenuHandler) GetTodayMeals(c *gin.Context) {
	canteen := c.Param("canteen")

	dishes, err := h.menuService.GetTodayMeals(c.Request.Context(), canteen)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load today's menu: " + err.Error()})
		return
	}

	if len(dishes) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dishes)
}
