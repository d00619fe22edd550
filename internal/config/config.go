package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Remote hospital-management API
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Client-side list pagination
	PageSize int

	// Server-side search cap (the backend returns at most this many matches
	// in one shot; results are still paginated locally)
	SearchPageSize int

	// Session store
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool
	SessionTTL    time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		APIBaseURL:     getEnv("HMS_API_BASE_URL", "http://localhost:5093"),
		HTTPTimeout:    getEnvAsDuration("HMS_HTTP_TIMEOUT", 20*time.Second),
		PageSize:       getEnvAsInt("PAGE_SIZE", 10),
		SearchPageSize: getEnvAsInt("SEARCH_PAGE_SIZE", 100),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisTLS:       getEnvAsBool("REDIS_TLS", false),
		SessionTTL:     getEnvAsDuration("SESSION_TTL", 8*time.Hour),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
