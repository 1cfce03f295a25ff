package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads the configuration for integration tests from TEST_* variables.
// When the test database is not configured, the returned Config has an empty
// Database.Host and callers are expected to skip.
func LoadTestConfig() (*Config, error) {
	// Try loading from project root
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Database.Host = os.Getenv("TEST_DB_HOST")
	if cfg.Database.Host == "" {
		return cfg, nil
	}

	port, err := strconv.Atoi(envOrDefault("TEST_DB_PORT", "3306"))
	if err != nil {
		return nil, fmt.Errorf("invalid TEST_DB_PORT: %w", err)
	}
	cfg.Database.Port = port
	cfg.Database.User = envOrDefault("TEST_DB_USER", "root")
	cfg.Database.Password = os.Getenv("TEST_DB_PASSWORD")
	cfg.Database.DBName = envOrDefault("TEST_DB_NAME", "chefacademy_test")

	cfg.JWT.Secret = envOrDefault("TEST_JWT_SECRET", "test-secret")
	cfg.APIKey = os.Getenv("TEST_API_KEY")
	cfg.Watch.MaxRetries = 3

	return cfg, nil
}
