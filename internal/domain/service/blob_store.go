package service

import (
	"context"
	"io"
)

// BlobStore keeps uploaded files outside the database.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error

	// Open returns a reader for key. Callers must close it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	Delete(ctx context.Context, key string) error
}
