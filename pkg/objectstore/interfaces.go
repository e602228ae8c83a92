// Package objectstore defines the narrow object-store surface the catalog
// consumes, plus an S3 implementation of it.
package objectstore

import (
	"context"
	"io"
)

// Client is the collaborator interface required by the catalog. Locations are
// opaque "s3://bucket/key" strings end to end; listings return prefixes
// (trailing slash) ahead of leaf keys.
type Client interface {
	// List enumerates the entries directly under prefix. Sub-prefixes are
	// returned with a trailing slash.
	List(ctx context.Context, prefix string, opts ...ListOption) ([]string, error)

	// IsPrefix reports whether a listed entry is directory-like.
	IsPrefix(entry string) bool

	// Copy moves a single object between the store and the local filesystem
	// (either direction) or between two store locations. It returns the
	// concrete destination path written.
	Copy(ctx context.Context, source, destination string) (string, error)

	// Open streams the object at location.
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}
