package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings shared by the calculator binaries.
type Config struct {
	HTTPAddr         string
	ShutdownTimeout  time.Duration
	LogLevel         zapcore.Level
	HistoryLimit     int
	TelemetryEnabled bool
	ServiceName      string
}

// Default returns the settings used when no environment variable is set.
func Default() Config {
	return Config{
		HTTPAddr:         ":8080",
		ShutdownTimeout:  5 * time.Second,
		LogLevel:         zapcore.InfoLevel,
		HistoryLimit:     50,
		TelemetryEnabled: true,
		ServiceName:      "calculator-api",
	}
}

// Load reads .env (when present) and then the process environment.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}
	return FromEnv(os.LookupEnv)
}

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

// FromEnv builds a Config from lookup, falling back to Default for unset keys.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("HTTP_ADDR"); ok && v != "" {
		cfg.HTTPAddr = v
	}

	if v, ok := lookup("SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		lvl, err := zapcore.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}

	if v, ok := lookup("CALC_HISTORY_LIMIT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("CALC_HISTORY_LIMIT: %w", err)
		}
		cfg.HistoryLimit = n
	}

	if v, ok := lookup("TELEMETRY_ENABLED"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("TELEMETRY_ENABLED: %w", err)
		}
		cfg.TelemetryEnabled = b
	}

	if v, ok := lookup("OTEL_SERVICE_NAME"); ok && v != "" {
		cfg.ServiceName = v
	}

	return cfg, nil
}
