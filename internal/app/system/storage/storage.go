// Package storage abstracts the file backends behind uploads and
// generated certificates: a local filesystem store for development and
// an S3 store for production. Paths are forward-slash object keys.
package storage

import (
	"context"
	"io"
)

// PutOptions carries optional metadata for stored objects.
type PutOptions struct {
	ContentType string
}

// Store is the backend interface used by the upload and certificate
// features.
type Store interface {
	// Put writes the object at path, overwriting any existing object.
	Put(ctx context.Context, path string, r io.Reader, opts *PutOptions) error
	// Delete removes the object at path. Missing objects are not an error.
	Delete(ctx context.Context, path string) error
	// URL returns the public URL for the object at path.
	URL(path string) string
}
