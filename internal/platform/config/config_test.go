package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "IS_PRODUCTION", "LOG_LEVEL", "RATE_LIMIT", "CORS_ALLOWED_ORIGINS", "ENABLE_SWAGGER", "ENABLE_METRICS"} {
		t.Setenv(key, "")
	}
	// viper ignores empty environment values, so the defaults apply.
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "100-S", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.AllowsAllOrigins())
	assert.True(t, cfg.EnableSwagger)
	assert.True(t, cfg.EnableMetrics)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT", "10-M")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ENABLE_METRICS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "10-M", cfg.RateLimit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AllowsAllOrigins())
	assert.False(t, cfg.EnableMetrics)
}

func TestLoadConfig_ProductionDisablesSwagger(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("ENABLE_SWAGGER", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction)
	assert.False(t, cfg.EnableSwagger)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Run("log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "LOG_LEVEL")
	})
	t.Run("rate limit", func(t *testing.T) {
		t.Setenv("RATE_LIMIT", "lots")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "RATE_LIMIT")
	})
}
