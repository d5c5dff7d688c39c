// Package storage persists uploaded cloth images through a gocloud.dev
// blob bucket, so local disk, GCS, or S3 are interchangeable via config.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"closet/config"
	"closet/internal/domain/lifecycle"
	"closet/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket drivers selectable through the bucket URL.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobImageStorage implements service.ImageStorage over a blob bucket.
type blobImageStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for the image storage, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and wires its shutdown into the app lifecycle.
func New(params Params) (service.ImageStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	publicBaseURL := cfg.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = cfg.BucketURL
	}

	store := &blobImageStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	params.Logger.Info("Image storage ready", slog.String("bucket", cfg.BucketURL))

	return store, nil
}

// Save streams the image into the bucket and returns its public URL.
func (s *blobImageStorage) Save(ctx context.Context, name string, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, name, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", name)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write image %s", name)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit image %s", name)
	}

	return s.publicBaseURL + "/" + name, nil
}

// Close releases the underlying bucket.
func (s *blobImageStorage) Close() error {
	return s.bucket.Close()
}
