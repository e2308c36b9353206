// Package storage writes uploaded files to a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"bookclub/config"
	"bookclub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

// Params holds dependencies for the blob storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.FileStorage, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Blob.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Blob.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, params.Config.Blob.PublicBaseURL, params.Logger), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.FileStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Put streams body into the bucket under key.
func (s *blobStorage) Put(ctx context.Context, key, contentType string, body io.Reader) (*service.StoredFile, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open writer for %s", key)
	}

	size, copyErr := io.Copy(writer, body)
	closeErr := writer.Close()
	if copyErr != nil {
		return nil, errors.Wrapf(copyErr, "failed to write %s", key)
	}
	if closeErr != nil {
		return nil, errors.Wrapf(closeErr, "failed to commit %s", key)
	}

	s.logger.Debug("Stored upload",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.Int64("size", size),
	)

	return &service.StoredFile{
		Key:         key,
		URL:         s.publicURL(key),
		ContentType: contentType,
		Size:        size,
	}, nil
}

// Delete removes key. A missing object is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (s *blobStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return key
	}

	return s.publicBaseURL + "/" + key
}
