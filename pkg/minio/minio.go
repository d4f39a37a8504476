package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// Connect establishes a connection to MinIO and verifies it's working by listing buckets.
func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		m.connected = false
		return NewConnectionError(err)
	}

	m.connected = true
	return nil
}

// HealthCheck verifies the connection is still healthy by listing buckets.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}

	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return NewConnectionError(err)
	}
	return nil
}

// EnsureBucket creates the bucket if it does not exist.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	if bucketName == "" {
		return NewInvalidInputError("bucket name cannot be empty")
	}

	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return NewConnectionError(err)
	}
	if exists {
		return nil
	}

	if err := m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return NewConnectionError(err)
	}
	return nil
}

// Upload stores an object and returns its size.
func (m *implMinIO) Upload(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) (int64, error) {
	if bucketName == "" || objectName == "" {
		return 0, NewInvalidInputError("bucket and object names cannot be empty")
	}

	info, err := m.minioClient.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return 0, &StorageError{Code: ErrCodeConnection, Message: "Upload failed", Operation: "upload", Cause: err}
	}
	return info.Size, nil
}

// Download retrieves an object. The caller must close the reader.
func (m *implMinIO) Download(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	if bucketName == "" || objectName == "" {
		return nil, NewInvalidInputError("bucket and object names cannot be empty")
	}

	obj, err := m.minioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, NewObjectNotFoundError(objectName)
	}
	return obj, nil
}

// Close marks the connection as disconnected. The MinIO client manages its
// own connection pool, so no explicit shutdown is required.
func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connected = false
	return nil
}
