package recommend

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/mensahub/backend/internal/recommend/schema"
)

// DefaultCallDeadline bounds a recommendation call when the config does not
// say otherwise.
const DefaultCallDeadline = 30 * time.Second

// Config is the construction-time configuration of a Client. It is read once
// and never reloaded.
type Config struct {
	Host         string
	Port         int
	Protocol     Protocol
	CallDeadline time.Duration
}

// Client invokes the remote recommendation engine through one configured
// transport. Its single operation never returns an error: every failure mode
// is converted into a sentinel response so an upstream UI degrades instead
// of crashing.
type Client struct {
	transport Transport
	deadline  time.Duration
}

// NewClient validates cfg and opens the transport channel. Invalid
// configuration is the only fault allowed to propagate, and it does so here,
// at startup.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("recommend: host must not be empty")
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("recommend: invalid port %d", cfg.Port)
	}
	deadline := cfg.CallDeadline
	if deadline <= 0 {
		deadline = DefaultCallDeadline
	}

	var transport Transport
	switch cfg.Protocol {
	case ProtocolBinary:
		t, err := NewBinaryRPCTransport(net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)))
		if err != nil {
			return nil, fmt.Errorf("recommend: open binary channel: %w", err)
		}
		transport = t
	case ProtocolText:
		transport = NewTextRPCTransport(fmt.Sprintf("http://%s", net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))))
	default:
		return nil, fmt.Errorf("recommend: unknown protocol %q", cfg.Protocol)
	}

	return &Client{transport: transport, deadline: deadline}, nil
}

// NewClientWithTransport builds a client around an already-open transport.
func NewClientWithTransport(t Transport, callDeadline time.Duration) *Client {
	if callDeadline <= 0 {
		callDeadline = DefaultCallDeadline
	}
	return &Client{transport: t, deadline: callDeadline}
}

// GetRecommendation performs exactly one network call and always returns a
// well-formed response. userID may be empty (anonymous); favorites and
// todayMenu may be empty but not nil semantically. No retries.
func (c *Client) GetRecommendation(ctx context.Context, userID string, favoriteMeals []string, todayMenu []schema.MenuMeal) *schema.RecommendationResponse {
	ctx, cancel := context.WithTimeout(ctx, c.deadline)
	defer cancel()

	req := &schema.RecommendationRequest{
		UserID:        userID,
		FavoriteMeals: favoriteMeals,
		TodayMenu:     todayMenu,
	}

	resp, err := c.transport.Invoke(ctx, req)
	if err != nil {
		return &schema.RecommendationResponse{
			RecommendedMealName: "Error",
			Reasoning:           "Failed to get recommendation: " + err.Error(),
		}
	}
	return resp
}

// Shutdown releases the transport channel. Safe to call more than once and
// from any exit path; completed calls keep their results.
func (c *Client) Shutdown(ctx context.Context) error {
	return c.transport.Close(ctx)
}
