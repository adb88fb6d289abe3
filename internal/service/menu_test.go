package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mensahub/backend/internal/types"
)

// fixedNow pins the clock so tests are not flaky around midnight.
var fixedNow = time.Date(2025, 5, 8, 12, 0, 0, 0, time.UTC)

func newTestMenuService(t *testing.T, handler http.HandlerFunc) *MenuService {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	svc := NewMenuService(ts.URL, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func weekPlanHandler(t *testing.T, days []dayPlan) http.HandlerFunc {
	t.Helper()

	year, week := fixedNow.ISOWeek()
	wantPath := fmt.Sprintf("/mensa-garching/%d/%02d.json", year, week)

	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantPath, r.URL.Path)
		json.NewEncoder(w).Encode(weekPlan{Number: week, Year: year, Days: days})
	}
}

func TestMenuService_GetTodayMeals(t *testing.T) {
	dishes := []types.Dish{
		{Name: "Vegetarian Pasta", DishType: "Main Dish", Labels: []string{"VEGETARIAN"}},
		{Name: "Salad", DishType: "Side Dish", Labels: []string{"VEGETARIAN"}},
	}
	svc := newTestMenuService(t, weekPlanHandler(t, []dayPlan{
		{Date: "2025-05-07", Dishes: []types.Dish{{Name: "Yesterday's Stew"}}},
		{Date: "2025-05-08", Dishes: dishes},
		{Date: "2025-05-09", Dishes: []types.Dish{{Name: "Tomorrow's Curry"}}},
	}))

	got, err := svc.GetTodayMeals(context.Background(), "mensa-garching")
	require.NoError(t, err)
	assert.Equal(t, dishes, got)
}

func TestMenuService_GetTodayMeals_NoServiceToday(t *testing.T) {
	svc := newTestMenuService(t, weekPlanHandler(t, []dayPlan{
		{Date: "2025-05-07", Dishes: []types.Dish{{Name: "Stew"}}},
	}))

	got, err := svc.GetTodayMeals(context.Background(), "mensa-garching")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMenuService_GetTodayMeals_UpstreamError(t *testing.T) {
	svc := newTestMenuService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := svc.GetTodayMeals(context.Background(), "mensa-garching")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestMenuService_GetTodayMeals_MalformedUpstream(t *testing.T) {
	svc := newTestMenuService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, err := svc.GetTodayMeals(context.Background(), "mensa-garching")
	assert.Error(t, err)
}
