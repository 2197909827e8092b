// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/veaveberg/qreate/pkg/log"
)

type Config struct {
	Port         string  `validate:"required,numeric"`
	AppEnv       string  `validate:"required,oneof=development production test"`
	CornerRadius float64 `validate:"gte=0"`
	RateLimit    float64 `validate:"gt=0"`
	RateBurst    int     `validate:"gte=1"`
	MaxTextLen   int     `validate:"gte=1"`
	PNGSize      int     `validate:"gte=16,lte=4096"`
	LogLevel     string  `validate:"required,oneof=trace debug info warn warning error fatal panic"`
}

// Load reads .env (when present) and the environment, applies defaults and
// validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn(log.Fields{"error": err.Error()}, "[config.Load] failed to read .env")
	}
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	var err error
	if cfg.CornerRadius, err = getFloat("QR_CORNER_RADIUS", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = getFloat("QR_RATE_LIMIT", 10); err != nil {
		return nil, err
	}
	if cfg.RateBurst, err = getInt("QR_RATE_BURST", 20); err != nil {
		return nil, err
	}
	if cfg.MaxTextLen, err = getInt("QR_MAX_TEXT", 2048); err != nil {
		return nil, err
	}
	if cfg.PNGSize, err = getInt("QR_PNG_SIZE", 1000); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
