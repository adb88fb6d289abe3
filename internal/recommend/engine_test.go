package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mensahub/backend/internal/recommend/schema"
)

func TestEngine_Recommend_FavoriteMatchPrecedence(t *testing.T) {
	engine := Engine{}

	t.Run("should return first menu item matching a favorite", func(t *testing.T) {
		req := &schema.RecommendationRequest{
			UserID:        "user-1",
			FavoriteMeals: []string{"Salad", "Pizza"},
			TodayMenu: []schema.MenuMeal{
				{Name: "Pasta"},
				{Name: "Salad"},
				{Name: "Pizza"},
			},
		}

		resp := engine.Recommend(req)

		assert.Equal(t, "Salad", resp.RecommendedMealName)
		assert.Equal(t, "Found your favorite meal 'Salad' in today's menu!", resp.Reasoning)
	})

	t.Run("should honor menu order not favorites order", func(t *testing.T) {
		req := &schema.RecommendationRequest{
			FavoriteMeals: []string{"Pizza", "Pasta"},
			TodayMenu: []schema.MenuMeal{
				{Name: "Pasta"},
				{Name: "Pizza"},
			},
		}

		resp := engine.Recommend(req)

		assert.Equal(t, "Pasta", resp.RecommendedMealName)
		assert.Equal(t, "Found your favorite meal 'Pasta' in today's menu!", resp.Reasoning)
	})

	t.Run("should tolerate duplicate favorites", func(t *testing.T) {
		req := &schema.RecommendationRequest{
			FavoriteMeals: []string{"Salad", "Salad"},
			TodayMenu: []schema.MenuMeal{
				{Name: "Pasta"},
				{Name: "Salad"},
			},
		}

		resp := engine.Recommend(req)

		assert.Equal(t, "Salad", resp.RecommendedMealName)
	})
}

func TestEngine_Recommend_FallbackToFirstItem(t *testing.T) {
	engine := Engine{}

	req := &schema.RecommendationRequest{
		UserID:        "user-1",
		FavoriteMeals: []string{"Sushi"},
		TodayMenu: []schema.MenuMeal{
			{Name: "Pasta"},
			{Name: "Salad"},
		},
	}

	resp := engine.Recommend(req)

	assert.Equal(t, "Pasta", resp.RecommendedMealName)
	assert.Equal(t, "Recommended based on today's available options", resp.Reasoning)
}

func TestEngine_Recommend_EmptyMenuSentinel(t *testing.T) {
	engine := Engine{}

	t.Run("with favorites", func(t *testing.T) {
		resp := engine.Recommend(&schema.RecommendationRequest{
			FavoriteMeals: []string{"Pizza"},
		})

		assert.Equal(t, "Default Recommendation", resp.RecommendedMealName)
		assert.Equal(t, "Based on your preferences", resp.Reasoning)
	})

	t.Run("without favorites", func(t *testing.T) {
		resp := engine.Recommend(&schema.RecommendationRequest{})

		assert.Equal(t, "Default Recommendation", resp.RecommendedMealName)
		assert.Equal(t, "Based on your preferences", resp.Reasoning)
	})
}

func TestEngine_Recommend_DoesNotMutateRequest(t *testing.T) {
	engine := Engine{}

	req := &schema.RecommendationRequest{
		UserID:        "user-1",
		FavoriteMeals: []string{"Salad"},
		TodayMenu: []schema.MenuMeal{
			{Name: "Pasta", Description: "Main Dish", Tags: []string{"VEGETARIAN"}},
			{Name: "Salad", Description: "Side Dish"},
		},
	}

	engine.Recommend(req)

	assert.Equal(t, []string{"Salad"}, req.FavoriteMeals)
	assert.Equal(t, "Pasta", req.TodayMenu[0].Name)
	assert.Equal(t, []string{"VEGETARIAN"}, req.TodayMenu[0].Tags)
}
