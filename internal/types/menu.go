package types

// Dish is one item of a canteen's daily menu, as served by the canteen API.
type Dish struct {
	Name     string   `json:"name"`
	DishType string   `json:"dish_type"`
	Labels   []string `json:"labels,omitempty"`
}
