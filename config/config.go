package config

import (
	"os"
	"sync"

	"github.com/hallbook/hallbook/logger"
	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// LoadEnv loads environment variables from a .env file if one is present.
// Missing .env is not an error; deployments provide real environment variables.
func LoadEnv() {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			logger.WarnLogger.Warn("No .env file found, relying on process environment")
		}
	})
}

// BookingAPIBaseURL returns the base URL of the external booking store API.
func BookingAPIBaseURL() string {
	return os.Getenv("BOOKING_API_BASE_URL")
}

// GetEnv returns the value of key, or fallback when key is unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
