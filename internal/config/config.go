package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/franciscosanchezn/gin-meals-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port int    `json:"port"`
	Host string `json:"host"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Nutrition API configuration
	NutritionAPIURL        string        `json:"nutrition_api_url"`
	NutritionAPIKey        string        `json:"nutrition_api_key"`
	NutritionTimeout       time.Duration `json:"nutrition_timeout"`
	NutritionRateLimit     float64       `json:"nutrition_rate_limit"`
	NutritionRejectUnknown bool          `json:"nutrition_reject_unknown"`

	// Nutrition cache database configuration
	Cache database.DatabaseConfig `json:"cache"`

	// SeedDishes preloads the catalog with a fixed set of dishes on startup
	SeedDishes bool `json:"seed_dishes"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, LogLevel: %s, NutritionAPIURL: %s, NutritionAPIKey: %s, NutritionTimeout: %s, NutritionRateLimit: %g, NutritionRejectUnknown: %t, Cache: %s, SeedDishes: %t}",
		c.Port, c.Host, c.LogLevel, c.NutritionAPIURL, maskSecret(c.NutritionAPIKey), c.NutritionTimeout,
		c.NutritionRateLimit, c.NutritionRejectUnknown, c.Cache.String(), c.SeedDishes)
}

// maskSecret hides a secret while still showing whether it was configured
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	return "[REDACTED]"
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates formats like NutritionAPIURL and the numeric settings
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("APP_PORT out of range: %d", port)
	}

	apiURL := GetEnvWithDefault("NUTRITION_API_URL", "https://api.api-ninjas.com/v1/nutrition")
	// validate URL with net/url
	if _, err := url.ParseRequestURI(apiURL); err != nil {
		return nil, fmt.Errorf("invalid NUTRITION_API_URL format: %s", apiURL)
	}

	timeout, err := time.ParseDuration(GetEnvWithDefault("NUTRITION_API_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid NUTRITION_API_TIMEOUT: %w", err)
	}

	apiKey := os.Getenv("NUTRITION_API_KEY")
	if apiKey == "" {
		log.Warn("NUTRITION_API_KEY is not set, nutrition lookups will be rejected by the upstream service")
	}

	config := &Config{
		Port:                   port,
		Host:                   GetEnvWithDefault("APP_HOST", "localhost"),
		LogLevel:               GetEnvWithDefault("LOG_LEVEL", "info"),
		NutritionAPIURL:        apiURL,
		NutritionAPIKey:        apiKey,
		NutritionTimeout:       timeout,
		NutritionRateLimit:     GetEnvAsType("NUTRITION_RATE_LIMIT", 0.0),
		NutritionRejectUnknown: GetEnvAsType("NUTRITION_REJECT_UNKNOWN", false),
		Cache: database.DatabaseConfig{
			Driver:   GetEnvWithDefault("NUTRITION_CACHE_DRIVER", database.DriverNone),
			Host:     GetEnvWithDefault("DB_HOST", "localhost"),
			Port:     GetEnvWithDefault("DB_PORT", "5432"),
			User:     GetEnvWithDefault("DB_USER", "user"),
			Password: GetEnvWithDefault("DB_PASSWORD", "password"),
			Name:     GetEnvWithDefault("DB_NAME", "meals"),
			SSLMode:  GetEnvWithDefault("DB_SSLMODE", "disable"),
			Path:     GetEnvWithDefault("DB_PATH", "nutrition_cache.sqlite"),
		},
		SeedDishes: GetEnvAsType("SEED_DISHES", false),
	}

	switch config.Cache.Driver {
	case database.DriverNone, database.DriverSQLite, database.DriverPostgres, "postgresql", "sqlite3":
	default:
		return nil, fmt.Errorf("unsupported NUTRITION_CACHE_DRIVER: %s", config.Cache.Driver)
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case float64:
		floatValue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return defaultValue
		}
		return any(floatValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	case time.Duration:
		durationValue, err := time.ParseDuration(value)
		if err != nil {
			return defaultValue
		}
		return any(durationValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
