// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"servicebuddy/config"

	"github.com/go-redis/redis/v8"
)

var (
	// UsageCacheClient is the dedicated client for AI usage counters.
	UsageCacheClient *redis.Client
	// SessionCacheClient is the dedicated client for chat session state.
	SessionCacheClient *redis.Client
)

// InitUsageCache initializes the Redis client for usage counters (using DB from AppConfig).
func InitUsageCache() {
	UsageCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisUsageDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := UsageCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Usage): %v", err)
	}
}

// GetUsageCacheClient returns the Redis client for usage counters.
func GetUsageCacheClient() *redis.Client {
	if UsageCacheClient == nil {
		InitUsageCache()
	}
	return UsageCacheClient
}

// InitSessionCache initializes the Redis client for chat session state.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for chat session state.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	InitUsageCache()
	InitSessionCache()
}
