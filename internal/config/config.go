package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds the application configuration.
type Config struct {
	Addr           string
	DatabasePath   string
	RedisAddr      string
	SessionBackend string // "redis" or "memory"
	SessionTTL     time.Duration
	WebDir         string
	Production     bool

	TelemetryEnabled bool
	OTLPEndpoint     string
}

// Load reads configuration from environment variables, falling back to
// development defaults.
func Load() (*Config, error) {
	ttl := 24 * time.Hour
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", raw, err)
		}
		if parsed < 0 {
			return nil, fmt.Errorf("SESSION_TTL must not be negative, got %q", raw)
		}
		ttl = parsed
	}

	backend := getEnv("SESSION_BACKEND", "redis")
	if backend != "redis" && backend != "memory" {
		return nil, fmt.Errorf("unknown SESSION_BACKEND %q", backend)
	}

	return &Config{
		Addr:             getEnv("ADDR", ":8080"),
		DatabasePath:     getEnv("DATABASE_PATH", "./taskboard.db"),
		RedisAddr:        getEnv("REDIS_CONNSTRING", "localhost:6379"),
		SessionBackend:   backend,
		SessionTTL:       ttl,
		WebDir:           getEnv("WEB_DIR", "./web"),
		Production:       os.Getenv("APP_ENV") == "production",
		TelemetryEnabled: os.Getenv("TELEMETRY_ENABLED") == "true",
		OTLPEndpoint:     getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel-collector:4317"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
