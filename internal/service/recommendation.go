package service

import (
	"context"
	"fmt"

	"github.com/mensahub/backend/internal/recommend"
	"github.com/mensahub/backend/internal/recommend/schema"
)

// RecommendationService glues stored preferences and today's menu to the
// remote recommendation engine.
type RecommendationService struct {
	prefs  IPreferenceService
	menu   IMenuService
	client *recommend.Client
}

// Ensure RecommendationService implements IRecommendationService
var _ IRecommendationService = (*RecommendationService)(nil)

// NewRecommendationService creates a new RecommendationService instance
func NewRecommendationService(prefs IPreferenceService, menu IMenuService, client *recommend.Client) *RecommendationService {
	return &RecommendationService{prefs: prefs, menu: menu, client: client}
}

// RecommendToday recommends one meal from today's menu at the given canteen.
// Failures gathering the inputs are real errors; the engine call itself
// never fails and degrades to the client's sentinel response instead.
func (s *RecommendationService) RecommendToday(ctx context.Context, userID, canteen string) (*schema.RecommendationResponse, error) {
	favorites, err := s.prefs.GetFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites for %s: %w", userID, err)
	}

	dishes, err := s.menu.GetTodayMeals(ctx, canteen)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's menu for %s: %w", canteen, err)
	}

	todayMenu := make([]schema.MenuMeal, 0, len(dishes))
	for _, d := range dishes {
		todayMenu = append(todayMenu, schema.MenuMeal{
			Name:        d.Name,
			Description: d.DishType,
			Tags:        d.Labels,
		})
	}

	return s.client.GetRecommendation(ctx, userID, favorites, todayMenu), nil
}
