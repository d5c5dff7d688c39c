package service

import (
	"context"
	"io"
)

// ImageStorage persists uploaded cloth images and returns an opaque URL.
// The rest of the system never interprets the URL.
type ImageStorage interface {
	// Save writes the image under the given name and returns its URL.
	Save(ctx context.Context, name string, contentType string, r io.Reader) (string, error)

	// Close releases the underlying bucket.
	Close() error
}
