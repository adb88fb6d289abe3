package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ValidateConfig checks that the loaded configuration can actually run the
// process. It is called once at startup; any error here is fatal.
func ValidateConfig(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("invalid SERVER_PORT %q: %w", cfg.ServerPort, err)
	}
	if _, err := strconv.Atoi(cfg.DBPort); err != nil {
		return fmt.Errorf("invalid DB_PORT %q: %w", cfg.DBPort, err)
	}
	if cfg.RecommenderPort < 1 || cfg.RecommenderPort > 65535 {
		return fmt.Errorf("invalid RECOMMENDER_PORT %d", cfg.RecommenderPort)
	}
	switch cfg.RecommenderProtocol {
	case "binary", "text":
	default:
		return fmt.Errorf("invalid RECOMMENDER_PROTOCOL %q (want binary or text)", cfg.RecommenderProtocol)
	}
	if cfg.RecommenderDeadline <= 0 {
		return fmt.Errorf("invalid RECOMMENDER_DEADLINE %v", cfg.RecommenderDeadline)
	}
	if cfg.CanteenAPIURL == "" {
		return fmt.Errorf("CANTEEN_API_URL must not be empty")
	}
	return nil
}

// parseIntEnv reads an integer environment variable with a default
func parseIntEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

// parseDurationEnv reads a duration environment variable with a default
func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
