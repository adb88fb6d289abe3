package api

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mensahub/backend/internal/middleware"
	"github.com/mensahub/backend/internal/models"
)

// setupTestDB creates an in-memory database with the application schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.FavoriteMeal{}))
	return db
}

// setupTestRouter builds a gin engine with the application middleware and an
// /api/v1 group, mirroring the production router.
func setupTestRouter(register func(v1 *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	register(router.Group("/api/v1"))
	return router
}
