package model

import (
	"context"
	"io"
)

// Storage is the object storage gateway.
type Storage interface {
	// Put uploads the object under key and returns its public URL.
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object. Deleting a nonexistent key returns
	// false rather than an error so retried deletes are safe.
	Delete(ctx context.Context, key string) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
	// PublicURL returns the URL the object will be served from, without
	// touching the store.
	PublicURL(key string) string
}
