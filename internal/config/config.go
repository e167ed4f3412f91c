package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Config is the environment-driven configuration shared by all subcommands.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string

	// Currency is the symbol prefixed to every amount in reports and
	// confirmations. It is configuration, not a module constant, so reports
	// can be rendered for any currency.
	Currency string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

func Load() *Config {
	return &Config{
		DBPath:   getEnv("FINTRACK_DB_PATH", "./data/fintrack.db"),
		Currency: getEnv("FINTRACK_CURRENCY", "€"),
		LogLevel: getEnv("FINTRACK_LOG_LEVEL", "info"),
	}
}

// Validate checks the configuration and returns all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if c.DBPath == "" {
		errs = append(errs, "database path cannot be empty")
	} else if dir := filepath.Dir(c.DBPath); dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				errs = append(errs, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
			}
		}
	}

	if strings.TrimSpace(c.Currency) == "" {
		errs = append(errs, "currency symbol cannot be empty")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// SlogLevel maps the configured level onto slog. Call Validate first;
// unknown levels fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
