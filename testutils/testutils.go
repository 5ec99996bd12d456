package testutils

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"renraku/config"
)

// LoadTestConfig loads database configuration for DB-backed tests from
// environment variables. Callers skip their test when it returns an error.
func LoadTestConfig() (*config.AppConfig, error) {
	// Try to load environment variables from various possible locations
	_ = godotenv.Load("../../.env.test") // From package directories
	_ = godotenv.Load(".env.test")       // From root directory
	_ = godotenv.Load()                  // Default .env file

	databaseURL := os.Getenv("DB_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DB_URL is not set")
	}

	databaseSchema := os.Getenv("DB_SCHEMA")
	if databaseSchema == "" {
		return nil, fmt.Errorf("DB_SCHEMA is not set")
	}

	return &config.AppConfig{
		DatabaseURL:    databaseURL,
		DatabaseSchema: databaseSchema,
	}, nil
}
