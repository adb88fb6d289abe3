package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mensahub/backend/internal/models"
)

// ErrFavoriteNotFound is returned when removing a favorite the user never added.
var ErrFavoriteNotFound = errors.New("favorite meal not found")

// PreferenceService handles persistence of user favorite meals
type PreferenceService struct {
	db *gorm.DB
}

// Ensure PreferenceService implements IPreferenceService
var _ IPreferenceService = (*PreferenceService)(nil)

// NewPreferenceService creates a new PreferenceService instance
func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// GetFavorites returns the user's favorite meal names, oldest first.
func (s *PreferenceService) GetFavorites(ctx context.Context, userID string) ([]string, error) {
	var favorites []models.FavoriteMeal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&favorites).Error; err != nil {
		return nil, err
	}

	names := make([]string, 0, len(favorites))
	for _, f := range favorites {
		names = append(names, f.MealName)
	}
	return names, nil
}

// AddFavorite records a favorite meal. Adding the same meal twice is a no-op.
func (s *PreferenceService) AddFavorite(ctx context.Context, userID, mealName string) error {
	var favorite models.FavoriteMeal
	return s.db.WithContext(ctx).
		Where("user_id = ? AND meal_name = ?", userID, mealName).
		Attrs(models.FavoriteMeal{ID: uuid.New(), UserID: userID, MealName: mealName}).
		FirstOrCreate(&favorite).Error
}

// RemoveFavorite deletes a favorite meal.
func (s *PreferenceService) RemoveFavorite(ctx context.Context, userID, mealName string) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND meal_name = ?", userID, mealName).
		Delete(&models.FavoriteMeal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
