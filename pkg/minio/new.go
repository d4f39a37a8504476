package minio

import (
	"context"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// IMinIO wraps the object storage operations used by the service.
type IMinIO interface {
	// Connect verifies the connection by listing buckets.
	Connect(ctx context.Context) error
	// HealthCheck verifies the connection is still healthy.
	HealthCheck(ctx context.Context) error
	// EnsureBucket creates the bucket if it does not exist.
	EnsureBucket(ctx context.Context, bucketName string) error
	// Upload stores an object and returns its size.
	Upload(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) (int64, error)
	// Download retrieves an object. The caller must close the reader.
	Download(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error)
	Close() error
}

// Config holds the MinIO connection configuration.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

type implMinIO struct {
	minioClient *minio.Client
	config      Config
	mu          sync.RWMutex
	connected   bool
}

// New creates a new MinIO client.
func New(cfg Config) (IMinIO, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, NewConnectionError(err)
	}
	return &implMinIO{
		minioClient: client,
		config:      cfg,
	}, nil
}
