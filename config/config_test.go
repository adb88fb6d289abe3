package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.RecommenderHost)
	assert.Equal(t, 50051, cfg.RecommenderPort)
	assert.Equal(t, "binary", cfg.RecommenderProtocol)
	assert.Equal(t, 30*time.Second, cfg.RecommenderDeadline)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("RECOMMENDER_HOST", "recommender")
	t.Setenv("RECOMMENDER_PORT", "6000")
	t.Setenv("RECOMMENDER_PROTOCOL", "text")
	t.Setenv("RECOMMENDER_DEADLINE", "5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "recommender", cfg.RecommenderHost)
	assert.Equal(t, 6000, cfg.RecommenderPort)
	assert.Equal(t, "text", cfg.RecommenderProtocol)
	assert.Equal(t, 5*time.Second, cfg.RecommenderDeadline)
}

func TestLoadConfig_FailsFast(t *testing.T) {
	t.Run("unparsable server port", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "not-a-port")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("unparsable recommender port", func(t *testing.T) {
		t.Setenv("RECOMMENDER_PORT", "fifty thousand")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("unknown protocol", func(t *testing.T) {
		t.Setenv("RECOMMENDER_PROTOCOL", "smoke-signals")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("unparsable deadline", func(t *testing.T) {
		t.Setenv("RECOMMENDER_DEADLINE", "forever")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
