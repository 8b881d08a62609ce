// config/redis/redis.go
package redis

import (
	"context"
	"os"
	"sync"

	"github.com/hallbook/hallbook/logger"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// GetRedisClient returns the shared Redis client. Sessions, the availability
// cache and the rate limiter all go through this client. The address comes
// from REDIS_URL; a plain localhost default keeps local development working.
func GetRedisClient() *redis.Client {
	redisOnce.Do(func() {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			redisURL = "redis://localhost:6379/0"
		}

		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			logger.ErrorLogger.Errorf("Invalid REDIS_URL %q: %v", redisURL, err)
			os.Exit(1)
		}

		redisClient = redis.NewClient(opt)

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.ErrorLogger.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		logger.InfoLogger.Info("Connected to Redis")
	})
	return redisClient
}

// CloseRedis closes the Redis connection.
func CloseRedis() {
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.ErrorLogger.Errorf("Error closing Redis connection: %v", err)
			return
		}
		logger.InfoLogger.Info("Redis connection closed")
	}
}
