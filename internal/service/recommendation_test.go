package service

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mensahub/backend/internal/recommend"
	"github.com/mensahub/backend/internal/types"
)

type stubPreferences struct {
	favorites []string
	err       error
}

func (s *stubPreferences) GetFavorites(ctx context.Context, userID string) ([]string, error) {
	return s.favorites, s.err
}
func (s *stubPreferences) AddFavorite(ctx context.Context, userID, mealName string) error { return nil }
func (s *stubPreferences) RemoveFavorite(ctx context.Context, userID, mealName string) error {
	return nil
}

type stubMenu struct {
	dishes []types.Dish
	err    error
}

func (s *stubMenu) GetTodayMeals(ctx context.Context, canteen string) ([]types.Dish, error) {
	return s.dishes, s.err
}

// newEngineBackedClient wires a real client to an in-process engine over the
// text transport.
func newEngineBackedClient(t *testing.T) *recommend.Client {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	recommend.RegisterHTTPRoutes(router, recommend.Engine{})
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	client := recommend.NewClientWithTransport(recommend.NewTextRPCTransport(ts.URL), 5*time.Second)
	t.Cleanup(func() { client.Shutdown(context.Background()) })
	return client
}

func TestRecommendationService_RecommendToday(t *testing.T) {
	svc := NewRecommendationService(
		&stubPreferences{favorites: []string{"Salad"}},
		&stubMenu{dishes: []types.Dish{
			{Name: "Pasta", DishType: "Main Dish"},
			{Name: "Salad", DishType: "Side Dish", Labels: []string{"VEGETARIAN"}},
		}},
		newEngineBackedClient(t),
	)

	resp, err := svc.RecommendToday(context.Background(), "user-1", "mensa-garching")
	require.NoError(t, err)
	assert.Equal(t, "Salad", resp.RecommendedMealName)
	assert.Equal(t, "Found your favorite meal 'Salad' in today's menu!", resp.Reasoning)
}

func TestRecommendationService_EmptyMenu(t *testing.T) {
	svc := NewRecommendationService(
		&stubPreferences{favorites: []string{"Salad"}},
		&stubMenu{},
		newEngineBackedClient(t),
	)

	resp, err := svc.RecommendToday(context.Background(), "user-1", "mensa-garching")
	require.NoError(t, err)
	assert.Equal(t, "Default Recommendation", resp.RecommendedMealName)
	assert.Equal(t, "Based on your preferences", resp.Reasoning)
}

func TestRecommendationService_PreferenceFailure(t *testing.T) {
	svc := NewRecommendationService(
		&stubPreferences{err: errors.New("db down")},
		&stubMenu{},
		newEngineBackedClient(t),
	)

	_, err := svc.RecommendToday(context.Background(), "user-1", "mensa-garching")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load favorites")
}

func TestRecommendationService_MenuFailure(t *testing.T) {
	svc := NewRecommendationService(
		&stubPreferences{},
		&stubMenu{err: errors.New("canteen API unreachable")},
		newEngineBackedClient(t),
	)

	_, err := svc.RecommendToday(context.Background(), "user-1", "mensa-garching")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load today's menu")
}

func TestRecommendationService_EngineUnreachableDegrades(t *testing.T) {
	client := recommend.NewClientWithTransport(
		recommend.NewTextRPCTransport("http://127.0.0.1:1"), time.Second)
	t.Cleanup(func() { client.Shutdown(context.Background()) })

	svc := NewRecommendationService(
		&stubPreferences{favorites: []string{"Salad"}},
		&stubMenu{dishes: []types.Dish{{Name: "Pasta"}}},
		client,
	)

	// An unreachable engine is not an error: the client degrades to its
	// sentinel response.
	resp, err := svc.RecommendToday(context.Background(), "user-1", "mensa-garching")
	require.NoError(t, err)
	assert.Equal(t, "Error", resp.RecommendedMealName)
	assert.Contains(t, resp.Reasoning, "Failed to get recommendation: ")
}
