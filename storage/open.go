package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/krishkalaria12/chrono-snap/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open binds the backend named by cfg. It returns a nil store when no backend
// is configured; callers treat that as "storage unavailable".
func Open(ctx context.Context, cfg config.StorageConfig) (ObjectStore, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendNone:
		return nil, nopCloser{}, nil
	case config.BackendMemory:
		return NewMemoryStore(), nopCloser{}, nil
	case config.BackendLocal:
		s, err := NewLocalStore(cfg.LocalDir)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case config.BackendGCS:
		s, err := NewGCSStore(ctx, cfg.GCSBucket, cfg.GCSPrefix, cfg.GCSCredentials)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case config.BackendS3:
		s, err := NewS3Store(ctx, S3Options{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Prefix:          cfg.S3Prefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}
}
