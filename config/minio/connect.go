package minio

import (
	"context"

	"pharmaclear-api/config"
	pkgMinIO "pharmaclear-api/pkg/minio"
)

var client pkgMinIO.MinIO

// Connect creates the MinIO client, verifies the connection, and ensures the
// report bucket exists.
func Connect(ctx context.Context, cfg *config.MinIOConfig) (pkgMinIO.MinIO, error) {
	c, err := pkgMinIO.NewMinIO(cfg)
	if err != nil {
		return nil, err
	}

	if err := c.Connect(ctx); err != nil {
		return nil, err
	}

	if err := c.EnsureBucket(ctx, cfg.ReportBucket); err != nil {
		return nil, err
	}

	client = c
	return client, nil
}

// Disconnect closes the MinIO client.
func Disconnect() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
