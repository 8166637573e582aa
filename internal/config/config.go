package config

import (
	"os"
	"time"
)

// Config holds console gateway configuration
type Config struct {
	Port            string
	BasePath        string
	APIBaseURL      string
	StateFile       string
	LogLevel        string
	SentryDSN       string
	UpstreamTimeout time.Duration
}

// Load returns configuration from environment variables
func Load() *Config {
	timeout := 30 * time.Second
	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		BasePath:        getEnv("BASE_PATH", "/api/v1"),
		APIBaseURL:      getEnv("API_BASE_URL", "https://winner51.online/api"),
		StateFile:       getEnv("STATE_FILE", "console-state.json"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		SentryDSN:       getEnv("SENTRY_DSN", ""),
		UpstreamTimeout: timeout,
	}
}

// getEnv gets environment variable with fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
