package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCSStore keeps objects in a Google Cloud Storage bucket under an optional
// prefix.
type GCSStore struct {
	cl         *gcs.Client
	bucketName string
	uploadPath string
}

// NewGCSStore uses application default credentials unless credentialsFile
// is set.
func NewGCSStore(ctx context.Context, bucketName, prefix, credentialsFile string) (*GCSStore, error) {
	if bucketName == "" {
		return nil, errors.New("gcs bucket name is required")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcs client: %w", err)
	}

	return &GCSStore{
		cl:         client,
		bucketName: bucketName,
		uploadPath: normalizePrefix(prefix),
	}, nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return prefix + "/"
}

func (c *GCSStore) object(key string) *gcs.ObjectHandle {
	return c.cl.Bucket(c.bucketName).Object(c.uploadPath + key)
}

func (c *GCSStore) Put(ctx context.Context, key string, data []byte, contentType string) (ObjectInfo, error) {
	wc := c.object(key).NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := io.Copy(wc, bytes.NewReader(data)); err != nil {
		_ = wc.Close()
		return ObjectInfo{}, fmt.Errorf("io.Copy: %w", err)
	}
	if err := wc.Close(); err != nil {
		return ObjectInfo{}, fmt.Errorf("Writer.Close: %w", err)
	}

	return c.info(wc.Attrs()), nil
}

func (c *GCSStore) info(attrs *gcs.ObjectAttrs) ObjectInfo {
	return ObjectInfo{
		Key:         strings.TrimPrefix(attrs.Name, c.uploadPath),
		ContentType: attrs.ContentType,
		ETag:        `"` + strings.Trim(attrs.Etag, `"`) + `"`,
		Size:        attrs.Size,
		Uploaded:    attrs.Created,
	}
}

func (c *GCSStore) Get(ctx context.Context, key string) (*Object, error) {
	obj := c.object(key)

	attrs, err := obj.Attrs(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read object attributes: %w", err)
	}

	rc, err := obj.NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open object: %w", err)
	}

	return &Object{ObjectInfo: c.info(attrs), Body: rc}, nil
}

func (c *GCSStore) List(ctx context.Context) ([]ObjectInfo, error) {
	it := c.cl.Bucket(c.bucketName).Objects(ctx, &gcs.Query{Prefix: c.uploadPath})

	var out []ObjectInfo
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		out = append(out, c.info(attrs))
	}
	return out, nil
}

func (c *GCSStore) Close() error {
	return c.cl.Close()
}
