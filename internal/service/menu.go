package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mensahub/backend/internal/types"
)

// menuCacheTTL keeps a canteen's daily menu cached long enough to shield the
// upstream API, short enough to pick up same-day plan changes.
const menuCacheTTL = time.Hour

// MenuService retrieves today's dishes for a canteen from the external
// canteen API and caches them in Redis. The upstream serves one JSON
// document per ISO week: {base}/{canteen}/{year}/{week}.json.
type MenuService struct {
	baseURL string
	client  *http.Client
	redis   *redis.Client
	now     func() time.Time
}

// Ensure MenuService implements IMenuService
var _ IMenuService = (*MenuService)(nil)

// NewMenuService creates a new MenuService instance. redisClient may be nil,
// in which case every lookup goes to the upstream API.
func NewMenuService(baseURL string, redisClient *redis.Client) *MenuService {
	return &MenuService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		redis:   redisClient,
		now:     time.Now,
	}
}

type weekPlan struct {
	Number int       `json:"number"`
	Year   int       `json:"year"`
	Days   []dayPlan `json:"days"`
}

type dayPlan struct {
	Date   string       `json:"date"`
	Dishes []types.Dish `json:"dishes"`
}

// GetTodayMeals returns the dishes served today at the given canteen. An
// empty slice means the canteen serves nothing today (weekend, holiday).
func (s *MenuService) GetTodayMeals(ctx context.Context, canteen string) ([]types.Dish, error) {
	today := s.now().Format("2006-01-02")
	cacheKey := fmt.Sprintf("menu:%s:%s", canteen, today)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var dishes []types.Dish
			if err := json.Unmarshal([]byte(cached), &dishes); err == nil {
				return dishes, nil
			}
			// Malformed cache entry, fall through to the upstream.
		}
	}

	plan, err := s.fetchWeekPlan(ctx, canteen)
	if err != nil {
		return nil, err
	}

	dishes := []types.Dish{}
	for _, day := range plan.Days {
		if day.Date == today {
			dishes = day.Dishes
			break
		}
	}

	if s.redis != nil {
		payload, err := json.Marshal(dishes)
		if err == nil {
			if err := s.redis.Set(ctx, cacheKey, payload, menuCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache menu for %s: %v", canteen, err)
			}
		}
	}

	return dishes, nil
}

func (s *MenuService) fetchWeekPlan(ctx context.Context, canteen string) (*weekPlan, error) {
	year, week := s.now().ISOWeek()
	url := fmt.Sprintf("%s/%s/%d/%02d.json", s.baseURL, canteen, year, week)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build menu request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu for %s: %w", canteen, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("canteen API returned status %d for %s", resp.StatusCode, canteen)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu response: %w", err)
	}

	var plan weekPlan
	if err := json.Unmarshal(body, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse menu response: %w", err)
	}
	return &plan, nil
}
