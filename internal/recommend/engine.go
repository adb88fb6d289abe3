package recommend

import (
	"fmt"

	"github.com/mensahub/backend/internal/recommend/schema"
)

// Sentinel returned when today's menu is empty.
const (
	defaultRecommendation = "Default Recommendation"
	defaultReasoning      = "Based on your preferences"
)

// Engine is the stateless matcher behind the RecommendMeal operation. It
// holds no mutable state, so any number of callers may invoke it
// concurrently without coordination.
type Engine struct{}

// Recommend picks one meal from the request's menu. It scans TodayMenu in
// its given order and returns the first item whose name appears among the
// favorites; with no match it falls back to the first menu item, and with an
// empty menu it returns the default sentinel regardless of favorites. The
// request is never mutated.
func (Engine) Recommend(req *schema.RecommendationRequest) *schema.RecommendationResponse {
	favorites := make(map[string]struct{}, len(req.FavoriteMeals))
	for _, name := range req.FavoriteMeals {
		favorites[name] = struct{}{}
	}

	for i := range req.TodayMenu {
		name := req.TodayMenu[i].Name
		if _, ok := favorites[name]; ok {
			return &schema.RecommendationResponse{
				RecommendedMealName: name,
				Reasoning:           fmt.Sprintf("Found your favorite meal '%s' in today's menu!", name),
			}
		}
	}

	if len(req.TodayMenu) > 0 {
		return &schema.RecommendationResponse{
			RecommendedMealName: req.TodayMenu[0].Name,
			Reasoning:           "Recommended based on today's available options",
		}
	}

	return &schema.RecommendationResponse{
		RecommendedMealName: defaultRecommendation,
		Reasoning:           defaultReasoning,
	}
}
