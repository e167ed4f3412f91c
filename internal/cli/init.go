// Package cli provides the initialization shared by every fintrack
// subcommand: environment loading, configuration, logging and the SQLite
// repository.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"fintrack/internal/config"
	"fintrack/internal/log"
	"fintrack/internal/storage"
)

// LoadEnvFile loads the .env file for local development. Errors are ignored
// since the file is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// Setup loads the environment and configuration and builds the default
// logger at the configured level. Exits the process on invalid configuration.
func Setup() (*log.Logger, *config.Config) {
	LoadEnvFile()

	cfg := config.Load()
	logger := log.New(cfg.SlogLevel(), log.ComponentApp)
	log.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return logger, cfg
}

// InitSQLite opens the SQLite repository, running migrations. Exits the
// process on failure.
func InitSQLite(logger *log.Logger, dbPath string) *storage.SQLiteRepository {
	repo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository",
			log.FieldError, err, "path", dbPath)
		os.Exit(1)
	}
	return repo
}
