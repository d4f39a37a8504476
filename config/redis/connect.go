package redis

import (
	"context"
	"fmt"
	"sync"

	"shield-srv/config"
	pkgRedis "shield-srv/pkg/redis"
)

var (
	instance pkgRedis.IRedis
	mu       sync.RWMutex
)

// Connect initializes the Redis connection using a singleton pattern.
func Connect(ctx context.Context, cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := pkgRedis.New(pkgRedis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	instance = client
	return instance, nil
}

// GetClient returns the singleton Redis client instance.
// Panics if the client has not been initialized by calling Connect() first.
func GetClient() pkgRedis.IRedis {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("Redis client not initialized. Call Connect() first")
	}
	return instance
}

// Disconnect closes the Redis connection and resets the singleton instance.
func Disconnect(client pkgRedis.IRedis) error {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		if err := client.Close(); err != nil {
			return fmt.Errorf("failed to close Redis connection: %w", err)
		}
		instance = nil
	}
	return nil
}

// HealthCheck pings Redis.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("Redis client not initialized")
	}
	if err := instance.Ping(ctx); err != nil {
		return fmt.Errorf("Redis health check failed: %w", err)
	}
	return nil
}
