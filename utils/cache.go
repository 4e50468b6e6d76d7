package utils

import (
	"context"
	"log"
	"time"

	"ragtask/config"

	"github.com/go-redis/redis/v8"
)

var (
	// MemoryCacheClient holds session transcripts.
	MemoryCacheClient *redis.Client
	// BookingStateCacheClient holds per-session booking slot-filling state.
	BookingStateCacheClient *redis.Client
)

// InitMemoryCache initializes the Redis client for conversation memory.
func InitMemoryCache() {
	MemoryCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMemoryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := MemoryCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Memory): %v", err)
	}
}

// GetMemoryCacheClient returns the conversation memory client.
func GetMemoryCacheClient() *redis.Client {
	if MemoryCacheClient == nil {
		InitMemoryCache()
	}
	return MemoryCacheClient
}

// InitBookingStateCache initializes the Redis client for booking state.
func InitBookingStateCache() {
	BookingStateCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisBookingStateDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := BookingStateCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Booking State): %v", err)
	}
}

// GetBookingStateCacheClient returns the booking state client.
func GetBookingStateCacheClient() *redis.Client {
	if BookingStateCacheClient == nil {
		InitBookingStateCache()
	}
	return BookingStateCacheClient
}

// InitRedis eagerly connects both Redis clients at startup.
func InitRedis() {
	InitMemoryCache()
	InitBookingStateCache()
}
