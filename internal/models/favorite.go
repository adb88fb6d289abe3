package models

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteMeal is one entry of a user's favorite-meals list. A user lists a
// meal at most once.
type FavoriteMeal struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    string    `gorm:"size:100;not null;uniqueIndex:idx_user_meal" json:"user_id"`
	MealName  string    `gorm:"size:255;not null;uniqueIndex:idx_user_meal" json:"meal_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FavoriteMeal) TableName() string {
	return "favorite_meals"
}
