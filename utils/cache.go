package utils

import (
	"context"
	"log"
	"time"

	"clinicdesk/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SnapshotClient holds schedule edit-session snapshots.
	SnapshotClient *redis.Client
	// CoalesceClient backs the treatment search coalescing cache.
	CoalesceClient *redis.Client
)

// InitSnapshotCache initializes the Redis client for schedule snapshots.
func InitSnapshotCache() {
	SnapshotClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSnapshotDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SnapshotClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Snapshots): %v", err)
	}
}

// GetSnapshotClient returns the snapshot Redis client.
func GetSnapshotClient() *redis.Client {
	if SnapshotClient == nil {
		InitSnapshotCache()
	}
	return SnapshotClient
}

// InitCoalesceCache initializes the Redis client for search coalescing.
func InitCoalesceCache() {
	CoalesceClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCoalesceDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CoalesceClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Coalesce): %v", err)
	}
}

// GetCoalesceClient returns the coalescing cache client.
func GetCoalesceClient() *redis.Client {
	if CoalesceClient == nil {
		InitCoalesceCache()
	}
	return CoalesceClient
}
