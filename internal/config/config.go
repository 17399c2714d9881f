package config

import (
	"os"
	"path/filepath"
	"sync"

	"fjacquet/receivables-xlsx/internal/logging"

	"github.com/joho/godotenv"
)

var envOnce sync.Once

// LoadEnv loads a .env file from the working directory or its parent, once per process.
// Variables already set in the environment win.
func LoadEnv() {
	envOnce.Do(func() {
		loadEnvFile(logging.GetLogger(), ".env", filepath.Join("..", ".env"))
	})
}

// loadEnvFile loads the first existing candidate and returns its path, or "" when none
// was loaded.
func loadEnvFile(logger logging.Logger, candidates ...string) string {
	for _, envFile := range candidates {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			logger.WithError(err).Warn("Error loading .env file",
				logging.Field{Key: logging.FieldFile, Value: envFile})
			return ""
		}
		logger.Debug("Loaded environment variables",
			logging.Field{Key: logging.FieldFile, Value: envFile})
		return envFile
	}
	logger.Debug("No .env file found, using environment variables")
	return ""
}

// ConfigureLoggingFromConfig builds the application logger from the log section.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
