package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds all configuration for the application. It is read once at
// process start and never reloaded.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Canteen API configuration
	CanteenAPIURL string

	// Recommendation engine configuration
	RecommenderHost     string
	RecommenderPort     int
	RecommenderProtocol string
	RecommenderDeadline time.Duration
}

// LoadConfig creates a new Config instance from environment variables,
// falling back to Docker secrets for credentials. Validation failures are
// fatal: a process with a broken configuration must not come up.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost:          getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getSecret("DB_PASSWORD", "db_password"),
		DBName:              getEnv("DB_NAME", "mensahub"),
		DBSSLMode:           getEnv("DB_SSL_MODE", "disable"),
		RedisHost:           getEnv("REDIS_HOST", "localhost"),
		RedisPort:           getEnv("REDIS_PORT", "6379"),
		RedisPassword:       getSecret("REDIS_PASSWORD", "redis_password"),
		CanteenAPIURL:       getEnv("CANTEEN_API_URL", "https://tum-dev.github.io/eat-api"),
		RecommenderHost:     getEnv("RECOMMENDER_HOST", "localhost"),
		RecommenderProtocol: getEnv("RECOMMENDER_PROTOCOL", "binary"),
	}

	var err error
	if cfg.RedisDB, err = parseIntEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RecommenderPort, err = parseIntEnv("RECOMMENDER_PORT", 50051); err != nil {
		return nil, err
	}
	if cfg.RecommenderDeadline, err = parseDurationEnv("RECOMMENDER_DEADLINE", 30*time.Second); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of key or a default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getSecret returns the value of key, or the content of the Docker secret
// file named secretName when the variable is unset.
func getSecret(key, secretName string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, secretName)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
