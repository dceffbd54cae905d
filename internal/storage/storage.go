package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"magazyn-plikow/internal/config"
)

var ErrBlobNotFound = errors.New("blob not found")

// BlobStore keeps opaque payloads under flat keys in a single bucket.
type BlobStore interface {
	Put(ctx context.Context, key string, data io.Reader, size int64) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// New builds the blob store selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (BlobStore, error) {
	switch cfg.Driver {
	case config.StorageDriverS3:
		return NewS3Storage(ctx, cfg.Bucket, cfg.S3)
	case config.StorageDriverMinio:
		return NewMinioStorage(ctx, cfg.Bucket, cfg.S3)
	case config.StorageDriverLocal:
		return NewLocalStorage(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
