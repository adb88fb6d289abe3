package types

// AddFavoriteRequest adds one meal to a user's favorites.
type AddFavoriteRequest struct {
	MealName string `json:"meal_name" binding:"required"`
}

// FavoritesResponse lists a user's favorite meal names.
type FavoritesResponse struct {
	UserID    string   `json:"user_id"`
	Favorites []string `json:"favorites"`
}
