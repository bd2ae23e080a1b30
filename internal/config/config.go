// Package config loads the muddle command defaults from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultEnvironment = "production"
	defaultLogLevel    = "info"
	defaultRadius      = 15
	defaultSpanGaps    = true
	defaultMaxRadius   = 300
)

// Config holds the settings that command-line flags start from.
type Config struct {
	Environment string
	LogLevel    string
	Radius      int
	SpanGaps    bool
	MaxRadius   int
	Column      int
}

// Load reads an optional .env file and the MUDDLE_* variables on top of
// the defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	cfg := Config{
		Environment: defaultEnvironment,
		LogLevel:    defaultLogLevel,
		Radius:      defaultRadius,
		SpanGaps:    defaultSpanGaps,
		MaxRadius:   defaultMaxRadius,
	}

	if v := strings.TrimSpace(os.Getenv("MUDDLE_ENV")); v != "" {
		cfg.Environment = strings.ToLower(v)
	}
	switch cfg.Environment {
	case "production", "development", "test":
	default:
		return Config{}, fmt.Errorf("MUDDLE_ENV must be one of: production, development, test")
	}

	if v := strings.TrimSpace(os.Getenv("MUDDLE_LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if n, ok, err := readIntEnv("MUDDLE_RADIUS", 0); err != nil {
		return Config{}, err
	} else if ok {
		cfg.Radius = n
	}

	if n, ok, err := readIntEnv("MUDDLE_MAX_RADIUS", 1); err != nil {
		return Config{}, err
	} else if ok {
		cfg.MaxRadius = n
	}

	if n, ok, err := readIntEnv("MUDDLE_COLUMN", 0); err != nil {
		return Config{}, err
	} else if ok {
		cfg.Column = n
	}

	if v := strings.TrimSpace(os.Getenv("MUDDLE_SPAN_GAPS")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse MUDDLE_SPAN_GAPS: %w", err)
		}
		cfg.SpanGaps = b
	}

	return cfg, nil
}

func readIntEnv(key string, minValue int) (int, bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, fmt.Errorf("parse %s: %w", key, err)
	}
	if n < minValue {
		return 0, false, fmt.Errorf("%s must be >= %d", key, minValue)
	}

	return n, true, nil
}
