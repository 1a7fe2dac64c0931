// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	LogLevel           string
	TelemetryEnabled   bool
	CORSAllowedOrigins []string
	TrustProxy         bool    // honour X-Forwarded-For / X-Real-IP
	RateLimitRPS       float64 // 0 disables rate limiting
	RateLimitBurst     int
	ShutdownTimeout    time.Duration
}

// LoadDotEnv loads environment variables from path (".env" when empty) if
// the file exists. Existing process environment variables are not overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load %s: %w", path, err)
}

// Load reads the configuration from the process environment, applying
// defaults for unset keys.
func Load() (Config, error) {
	cfg := Config{
		Port:               getEnv("PORT", "8000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	var err error

	if cfg.TelemetryEnabled, err = parseBool("OTEL_ENABLED", false); err != nil {
		return Config{}, err
	}

	if cfg.TrustProxy, err = parseBool("TRUST_PROXY", false); err != nil {
		return Config{}, err
	}

	if cfg.RateLimitRPS, err = parseFloat("RATE_LIMIT_RPS", 10); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS < 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %g", cfg.RateLimitRPS)
	}

	if cfg.RateLimitBurst, err = parseInt("RATE_LIMIT_BURST", 20); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", cfg.RateLimitBurst)
	}

	if cfg.ShutdownTimeout, err = parseDuration("SHUTDOWN_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func parseInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}
