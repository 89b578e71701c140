package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var ErrNotFound = errors.New("object not found")

// ObjectStore is a flat binary key-value store for generated images.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (ObjectInfo, error)
	Get(ctx context.Context, key string) (*Object, error)
	List(ctx context.Context) ([]ObjectInfo, error)
}

type ObjectInfo struct {
	Key         string
	ContentType string
	ETag        string
	Size        int64
	Uploaded    time.Time
}

// Object is an open object body. Callers must close Body.
type Object struct {
	ObjectInfo
	Body io.ReadCloser
}
