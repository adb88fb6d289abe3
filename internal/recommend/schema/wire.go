// Package schema defines the wire contract for a recommendation exchange.
// The messages mirror meal_recommendation.proto; the field numbers below are
// permanent and shared byte-identically by the calling side and the engine
// side. Unknown fields are skipped on decode so that old and new producers
// remain interoperable.
package schema

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// RecommendMealMethod is the full gRPC method name of the remote operation.
const RecommendMealMethod = "/mensa.MealRecommendationService/RecommendMeal"

// Permanent field numbers. Never reuse a retired number.
const (
	menuMealNameField        = 1
	menuMealDescriptionField = 2
	menuMealTagsField        = 3

	requestUserIDField        = 1
	requestFavoriteMealsField = 2
	requestTodayMenuField     = 3

	responseMealNameField  = 1
	responseReasoningField = 2
)

// MenuMeal is a single item on today's menu. Identity is Name; tag order
// carries no meaning.
type MenuMeal struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
}

// RecommendationRequest asks the engine for one recommendation.
// TodayMenu order is significant: it decides the tie-break in matching.
type RecommendationRequest struct {
	UserID        string     `json:"user_id"`
	FavoriteMeals []string   `json:"favorite_meals"`
	TodayMenu     []MenuMeal `json:"today_menu"`
}

// RecommendationResponse carries the engine's answer. Both fields are always
// non-empty, including on failure.
type RecommendationResponse struct {
	RecommendedMealName string `json:"recommended_meal_name"`
	Reasoning           string `json:"reasoning"`
}

func (m *MenuMeal) MarshalBinary() ([]byte, error) {
	var b []byte
	if m.Name != "" {
		b = protowire.AppendTag(b, menuMealNameField, protowire.BytesType)
		b = protowire.AppendString(b, m.Name)
	}
	if m.Description != "" {
		b = protowire.AppendTag(b, menuMealDescriptionField, protowire.BytesType)
		b = protowire.AppendString(b, m.Description)
	}
	for _, tag := range m.Tags {
		b = protowire.AppendTag(b, menuMealTagsField, protowire.BytesType)
		b = protowire.AppendString(b, tag)
	}
	return b, nil
}

func (m *MenuMeal) UnmarshalBinary(data []byte) error {
	*m = MenuMeal{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("menu meal: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == menuMealNameField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("menu meal name: %w", protowire.ParseError(n))
			}
			m.Name = v
			data = data[n:]
		case num == menuMealDescriptionField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("menu meal description: %w", protowire.ParseError(n))
			}
			m.Description = v
			data = data[n:]
		case num == menuMealTagsField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("menu meal tag: %w", protowire.ParseError(n))
			}
			m.Tags = append(m.Tags, v)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("menu meal field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return nil
}

func (r *RecommendationRequest) MarshalBinary() ([]byte, error) {
	var b []byte
	if r.UserID != "" {
		b = protowire.AppendTag(b, requestUserIDField, protowire.BytesType)
		b = protowire.AppendString(b, r.UserID)
	}
	for _, fav := range r.FavoriteMeals {
		b = protowire.AppendTag(b, requestFavoriteMealsField, protowire.BytesType)
		b = protowire.AppendString(b, fav)
	}
	for i := range r.TodayMenu {
		sub, err := r.TodayMenu[i].MarshalBinary()
		if err != nil {
			return nil, err
		}
		b = protowire.AppendTag(b, requestTodayMenuField, protowire.BytesType)
		b = protowire.AppendBytes(b, sub)
	}
	return b, nil
}

func (r *RecommendationRequest) UnmarshalBinary(data []byte) error {
	*r = RecommendationRequest{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("recommendation request: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == requestUserIDField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("request user id: %w", protowire.ParseError(n))
			}
			r.UserID = v
			data = data[n:]
		case num == requestFavoriteMealsField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("request favorite meal: %w", protowire.ParseError(n))
			}
			r.FavoriteMeals = append(r.FavoriteMeals, v)
			data = data[n:]
		case num == requestTodayMenuField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return fmt.Errorf("request today menu: %w", protowire.ParseError(n))
			}
			var meal MenuMeal
			if err := meal.UnmarshalBinary(v); err != nil {
				return err
			}
			r.TodayMenu = append(r.TodayMenu, meal)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("request field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return nil
}

func (r *RecommendationResponse) MarshalBinary() ([]byte, error) {
	var b []byte
	if r.RecommendedMealName != "" {
		b = protowire.AppendTag(b, responseMealNameField, protowire.BytesType)
		b = protowire.AppendString(b, r.RecommendedMealName)
	}
	if r.Reasoning != "" {
		b = protowire.AppendTag(b, responseReasoningField, protowire.BytesType)
		b = protowire.AppendString(b, r.Reasoning)
	}
	return b, nil
}

func (r *RecommendationResponse) UnmarshalBinary(data []byte) error {
	*r = RecommendationResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("recommendation response: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == responseMealNameField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("response meal name: %w", protowire.ParseError(n))
			}
			r.RecommendedMealName = v
			data = data[n:]
		case num == responseReasoningField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("response reasoning: %w", protowire.ParseError(n))
			}
			r.Reasoning = v
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("response field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return nil
}
