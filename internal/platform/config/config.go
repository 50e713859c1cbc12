package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	LogLevel           slog.Level
	RateLimit          string   // ulule/limiter formatted rate, e.g. "100-S"
	CORSAllowedOrigins []string // "*" allows any origin
	EnableSwagger      bool
	EnableMetrics      bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT", "100-S")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("ENABLE_SWAGGER", true)
	v.SetDefault("ENABLE_METRICS", true)

	// Actual environment variables override .env values, which override defaults.
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		RateLimit:     v.GetString("RATE_LIMIT"),
		EnableSwagger: v.GetBool("ENABLE_SWAGGER"),
		EnableMetrics: v.GetBool("ENABLE_METRICS"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v.GetString("LOG_LEVEL"), err)
	}

	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.IsProduction && cfg.EnableSwagger {
		//no swagger in prod
		cfg.EnableSwagger = false
	}

	return cfg, nil
}

// AllowsAllOrigins reports whether CORS is open to any origin.
func (c *Config) AllowsAllOrigins() bool {
	for _, origin := range c.CORSAllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
