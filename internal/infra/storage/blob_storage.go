// Package storage keeps uploaded files in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"

	"pixelforge/config"
	"pixelforge/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/azureblob" // registers azblob://
	_ "gocloud.dev/blob/fileblob"  // registers file://
	_ "gocloud.dev/blob/gcsblob"   // registers gs://
	_ "gocloud.dev/blob/memblob"   // registers mem://
	_ "gocloud.dev/blob/s3blob"    // registers s3://
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

type bucketStorage struct {
	bucket *blob.Bucket
}

// NewBucketStorage wraps an opened bucket.
func NewBucketStorage(bucket *blob.Bucket) service.BlobStorage {
	return &bucketStorage{bucket: bucket}
}

// Put writes data under key.
func (s *bucketStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "failed to write object %s", key)
	}

	return nil
}

// Open returns a reader for key.
func (s *bucketStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrObjectNotFound
		}

		return nil, errors.Wrapf(err, "failed to open object %s", key)
	}

	return reader, nil
}

// Delete removes key; a missing key is ignored.
func (s *bucketStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

// Exists reports whether key is present.
func (s *bucketStorage) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat object %s", key)
	}

	return ok, nil
}

// Params holds dependencies for the blob storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by storage.bucketUrl and closes it on shutdown.
func New(params Params) (service.BlobStorage, error) {
	bucketURL := defaultBucketURL
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	if bucketURL == defaultBucketURL {
		params.Logger.Warn("Storage bucket not configured, uploads are kept in memory")
	} else {
		params.Logger.Info("Opened storage bucket", slog.String("url", bucketURL))
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStorage(bucket), nil
}

// Module provides the blob storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
