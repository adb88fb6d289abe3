package service

import (
	"context"

	"github.com/mensahub/backend/internal/recommend/schema"
	"github.com/mensahub/backend/internal/types"
)

// IPreferenceService defines the interface for favorite-meal persistence
type IPreferenceService interface {
	GetFavorites(ctx context.Context, userID string) ([]string, error)
	AddFavorite(ctx context.Context, userID, mealName string) error
	RemoveFavorite(ctx context.Context, userID, mealName string) error
}

// IMenuService defines the interface for canteen menu retrieval
type IMenuService interface {
	GetTodayMeals(ctx context.Context, canteen string) ([]types.Dish, error)
}

// IRecommendationService defines the interface for recommendation orchestration
type IRecommendationService interface {
	RecommendToday(ctx context.Context, userID, canteen string) (*schema.RecommendationResponse, error)
}
