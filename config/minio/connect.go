package minio

import (
	"context"
	"fmt"
	"sync"

	"shield-srv/config"
	pkgMinio "shield-srv/pkg/minio"
)

var (
	instance pkgMinio.IMinIO
	mu       sync.RWMutex
)

// Connect initializes the MinIO connection using a singleton pattern.
// Returns (nil, nil) when no endpoint is configured; object storage is optional.
func Connect(ctx context.Context, cfg config.MinIOConfig) (pkgMinio.IMinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}
	if cfg.Endpoint == "" {
		return nil, nil
	}

	client, err := pkgMinio.New(pkgMinio.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Region:    cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	if err := client.EnsureBucket(ctx, cfg.FeedBucket); err != nil {
		return nil, fmt.Errorf("failed to ensure feed bucket: %w", err)
	}

	instance = client
	return instance, nil
}

// Disconnect closes the MinIO connection and resets the singleton instance.
func Disconnect(client pkgMinio.IMinIO) error {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		if err := client.Close(); err != nil {
			return fmt.Errorf("failed to close MinIO connection: %w", err)
		}
		instance = nil
	}
	return nil
}
