// Package storage keeps profile photos in a gocloud.dev bucket selected by URL.
package storage

import (
	"context"
	"io"
	"log/slog"

	"cardportal/config"
	domainerrors "cardportal/internal/domain/errors"
	"cardportal/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Registered bucket schemes: file://, mem://, gs:// and s3://.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

type bucketStore struct {
	bucket *blob.Bucket
}

// BlobStoreParams holds dependencies for the BlobStore, injected by Fx.
type BlobStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens the configured bucket and closes it on shutdown.
func NewBlobStore(params BlobStoreParams) (service.BlobStore, error) {
	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %q", params.Config.Storage.BucketURL)
	}

	params.Logger.Info("Blob storage initialized", slog.String("bucket_url", params.Config.Storage.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBucketStore(bucket), nil
}

// NewBucketStore wraps an already opened bucket.
func NewBucketStore(bucket *blob.Bucket) service.BlobStore {
	return &bucketStore{bucket: bucket}
}

func (s *bucketStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})

	return errors.Wrapf(err, "write blob %s", key)
}

func (s *bucketStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrPhotoNotFound
		}

		return nil, errors.Wrapf(err, "open blob %s", key)
	}

	return reader, nil
}

// Delete is idempotent: a missing key is not an error.
func (s *bucketStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete blob %s", key)
	}

	return nil
}
