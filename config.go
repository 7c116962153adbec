package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/KodFikirSanat/focussuite/modules/activity"
	"github.com/KodFikirSanat/focussuite/modules/auth"
)

// Config holds the application settings read from the environment.
type Config struct {
	DBPath           string
	HTTPPort         int
	Token            auth.TokenConfig
	BcryptCost       int
	ActivityFeedSize int
	ShutdownTimeout  time.Duration
}

// loadConfig reads the configuration from environment variables, falling back
// to development defaults.
func loadConfig() Config {
	defaults := auth.DefaultTokenConfig()

	return Config{
		DBPath:   getEnv("FOCUS_DB_PATH", "focussuite.db"),
		HTTPPort: getEnvInt("HTTP_PORT", 3000),
		Token: auth.TokenConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", defaults.SecretKey),
			Issuer:     getEnv("JWT_ISSUER", defaults.Issuer),
			AccessTTL:  getEnvDuration("JWT_ACCESS_TTL", defaults.AccessTTL),
			RefreshTTL: getEnvDuration("JWT_REFRESH_TTL", defaults.RefreshTTL),
		},
		BcryptCost:       getEnvInt("BCRYPT_COST", auth.DefaultBcryptCost),
		ActivityFeedSize: getEnvInt("ACTIVITY_FEED_SIZE", activity.DefaultCapacity),
		ShutdownTimeout:  getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvDuration returns environment variable as duration or default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("Warning: invalid duration value for %s: %s, using default: %s", key, value, defaultValue)
	}
	return defaultValue
}
