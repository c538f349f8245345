package config

import (
	"os"
	"strconv"
)

// TestConfig holds configuration for E2E/smoke tests
type TestConfig struct {
	// API endpoint configuration
	BaseURL string // e.g., "http://localhost:8080/v1"

	// Test identity used by the signup flow
	TestPhone    string
	TestPassword string

	// Test timeouts
	HealthCheckTimeout int // seconds
	APICallTimeout     int // seconds
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() (*TestConfig, error) {
	baseURL := os.Getenv("TEST_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080/v1" // Default for local testing
	}

	phone := os.Getenv("TEST_PHONE")
	if phone == "" {
		phone = "9876543210"
	}

	password := os.Getenv("TEST_PASSWORD")
	if password == "" {
		password = "Abcdef1!"
	}

	return &TestConfig{
		BaseURL:            baseURL,
		TestPhone:          phone,
		TestPassword:       password,
		HealthCheckTimeout: envInt("TEST_HEALTH_TIMEOUT", 30),
		APICallTimeout:     envInt("TEST_API_TIMEOUT", 10),
	}, nil
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}
