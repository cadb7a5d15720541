package minio

import (
	"context"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/minio/minio-go/v7"
)

// Connect establishes a connection to MinIO and verifies it's working by listing buckets.
func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.minioClient.ListBuckets(ctx)
	if err != nil {
		m.connected = false
		return errors.Wrap(err, "minio connect")
	}

	m.connected = true
	return nil
}

// HealthCheck verifies the connection is still healthy by listing buckets.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected {
		return ErrNotConnected
	}

	_, err := m.minioClient.ListBuckets(ctx)
	if err != nil {
		return errors.Wrap(err, "minio health check")
	}
	return nil
}

// Close marks the client as disconnected. The MinIO client manages its own
// connection pool, so no explicit shutdown is required.
func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connected = false
	return nil
}

// EnsureBucket creates the bucket if it does not already exist.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	if bucketName == "" {
		return ErrBucketNameRequired
	}

	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return errors.Wrap(err, "minio check bucket exists")
	}
	if exists {
		return nil
	}

	if err := m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return errors.Wrap(err, "minio create bucket")
	}
	return nil
}

// UploadObject uploads an object and returns its stored metadata.
func (m *implMinIO) UploadObject(ctx context.Context, req *UploadRequest) (*ObjectInfo, error) {
	if req.BucketName == "" {
		return nil, ErrBucketNameRequired
	}

	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, minio.PutObjectOptions{
		ContentType: req.ContentType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "minio upload object")
	}

	return &ObjectInfo{
		BucketName: info.Bucket,
		ObjectName: info.Key,
		Size:       info.Size,
		ETag:       info.ETag,
	}, nil
}

// GetPresignedDownloadURL generates a presigned URL for direct download.
func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	if bucketName == "" {
		return "", ErrBucketNameRequired
	}

	u, err := m.minioClient.PresignedGetObject(ctx, bucketName, objectName, expiry, nil)
	if err != nil {
		return "", errors.Wrap(err, "minio presign download")
	}
	return u.String(), nil
}

// DeleteObject removes an object from storage.
func (m *implMinIO) DeleteObject(ctx context.Context, bucketName, objectName string) error {
	if bucketName == "" {
		return ErrBucketNameRequired
	}

	if err := m.minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrap(err, "minio delete object")
	}
	return nil
}
