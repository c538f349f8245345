package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`
	Version     string `json:"version"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Collection names
	ProfileCollection     string `json:"mongo_profile_collection"`
	HelpRequestCollection string `json:"mongo_help_request_collection"`
	HelpOfferCollection   string `json:"mongo_help_offer_collection"`

	// Redis configuration
	RedisURI      string `json:"redis_uri"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`

	// Session configuration
	SessionTTL time.Duration `json:"session_ttl"`

	// One-time code configuration
	OTPResendSeconds   int           `json:"otp_resend_seconds"`
	OTPMaxResends      int           `json:"otp_max_resends"`
	OTPAutoSubmitDelay time.Duration `json:"otp_auto_submit_delay"`

	// Authentication backend. An empty URL selects the built-in simulated backend.
	AuthBackendURL     string        `json:"auth_backend_url"`
	AuthBackendTimeout time.Duration `json:"auth_backend_timeout"`

	// Rate limiting
	RateLimitRPS   float64 `json:"rate_limit_rps"`
	RateLimitBurst int     `json:"rate_limit_burst"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`

	// NavigationStrictLogging logs every undeclared screen change at error level
	NavigationStrictLogging bool `json:"navigation_strict_logging"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from a .env file, when present, and the environment
func LoadConfig() error {
	// a missing .env is fine; real deployments inject the environment directly
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	sessionTTL, err := time.ParseDuration(getEnvOrDefault("SESSION_TTL", "24h"))
	if err != nil {
		return fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	resendSeconds, err := strconv.Atoi(getEnvOrDefault("OTP_RESEND_SECONDS", "30"))
	if err != nil || resendSeconds <= 0 {
		return fmt.Errorf("invalid OTP_RESEND_SECONDS: %q", os.Getenv("OTP_RESEND_SECONDS"))
	}

	maxResends, err := strconv.Atoi(getEnvOrDefault("OTP_MAX_RESENDS", "3"))
	if err != nil || maxResends < 0 {
		return fmt.Errorf("invalid OTP_MAX_RESENDS: %q", os.Getenv("OTP_MAX_RESENDS"))
	}

	autoSubmitDelay, err := time.ParseDuration(getEnvOrDefault("OTP_AUTO_SUBMIT_DELAY", "300ms"))
	if err != nil {
		return fmt.Errorf("invalid OTP_AUTO_SUBMIT_DELAY: %w", err)
	}

	authTimeout, err := time.ParseDuration(getEnvOrDefault("AUTH_BACKEND_TIMEOUT", "10s"))
	if err != nil {
		return fmt.Errorf("invalid AUTH_BACKEND_TIMEOUT: %w", err)
	}

	rateLimitRPS, err := strconv.ParseFloat(getEnvOrDefault("RATE_LIMIT_RPS", "20"), 64)
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}

	rateLimitBurst, err := strconv.Atoi(getEnvOrDefault("RATE_LIMIT_BURST", "40"))
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		Version:     getEnvOrDefault("VERSION", "v1.0.0"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "myarea"),

		// Collection names
		ProfileCollection:     getEnvOrDefault("MONGODB_PROFILE_COLLECTION", "profiles"),
		HelpRequestCollection: getEnvOrDefault("MONGODB_HELP_REQUEST_COLLECTION", "help_requests"),
		HelpOfferCollection:   getEnvOrDefault("MONGODB_HELP_OFFER_COLLECTION", "help_offers"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		SessionTTL: sessionTTL,

		OTPResendSeconds:   resendSeconds,
		OTPMaxResends:      maxResends,
		OTPAutoSubmitDelay: autoSubmitDelay,

		AuthBackendURL:     getEnvOrDefault("AUTH_BACKEND_URL", ""),
		AuthBackendTimeout: authTimeout,

		RateLimitRPS:   rateLimitRPS,
		RateLimitBurst: rateLimitBurst,

		TracingEnabled:  getEnvAsBoolOrDefault("TRACING_ENABLED", false),
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),

		NavigationStrictLogging: getEnvAsBoolOrDefault("NAVIGATION_STRICT_LOGGING", false),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsBoolOrDefault parses a boolean environment variable, falling back on parse errors
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
