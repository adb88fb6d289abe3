package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mensahub/backend/internal/service"
	"github.com/mensahub/backend/internal/types"
)

func setupPreferenceRouter(t *testing.T) *gin.Engine {
	handler := NewPreferenceHandler(service.NewPreferenceService(setupTestDB(t)))
	return setupTestRouter(func(v1 *gin.RouterGroup) {
		handler.RegisterRoutes(v1)
	})
}

func addFavorite(t *testing.T, router *gin.Engine, userID, mealName string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(types.AddFavoriteRequest{MealName: mealName})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/users/"+userID+"/preferences", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddFavorite(t *testing.T) {
	router := setupPreferenceRouter(t)

	w := addFavorite(t, router, "user-1", "Pizza")
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp["user_id"])
	assert.Equal(t, "Pizza", resp["meal_name"])
}

func TestAddFavorite_RejectsMissingMealName(t *testing.T) {
	router := setupPreferenceRouter(t)

	req := httptest.NewRequest("POST", "/api/v1/users/user-1/preferences", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListFavorites(t *testing.T) {
	router := setupPreferenceRouter(t)

	require.Equal(t, http.StatusCreated, addFavorite(t, router, "user-1", "Pizza").Code)
	require.Equal(t, http.StatusCreated, addFavorite(t, router, "user-1", "Salad").Code)
	require.Equal(t, http.StatusCreated, addFavorite(t, router, "user-2", "Sushi").Code)

	req := httptest.NewRequest("GET", "/api/v1/users/user-1/preferences", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.FavoritesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, []string{"Pizza", "Salad"}, resp.Favorites)
}

func TestRemoveFavorite(t *testing.T) {
	router := setupPreferenceRouter(t)

	require.Equal(t, http.StatusCreated, addFavorite(t, router, "user-1", "Pizza").Code)

	req := httptest.NewRequest("DELETE", "/api/v1/users/user-1/preferences/Pizza", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest("GET", "/api/v1/users/user-1/preferences", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp types.FavoritesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Favorites)
}

func TestRemoveFavorite_NotFound(t *testing.T) {
	router := setupPreferenceRouter(t)

	req := httptest.NewRequest("DELETE", "/api/v1/users/user-1/preferences/Pizza", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
