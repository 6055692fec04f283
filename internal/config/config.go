// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	Port           int
	DBPath         string
	LogLevel       slog.Level
	MetricsEnabled bool
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	port, err := strconv.Atoi(valueOrDefault(k.String("PORT"), "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", k.String("PORT"))
	}

	metrics, err := strconv.ParseBool(valueOrDefault(k.String("METRICS_ENABLED"), "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid METRICS_ENABLED %q", k.String("METRICS_ENABLED"))
	}

	return &Config{
		Port:           port,
		DBPath:         valueOrDefault(k.String("DB_PATH"), "./data/vasooly.db"),
		LogLevel:       ParseLevel(k.String("LOG_LEVEL")),
		MetricsEnabled: metrics,
	}, nil
}

// Addr returns the address the HTTP server should bind to.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ParseLevel maps debug, info, warn and error to slog levels (default: info).
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}
