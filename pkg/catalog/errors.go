package catalog

import (
	"errors"
)

// Catalog error taxonomy. Object-store listing and copy failures are not part
// of it: they propagate unwrapped and unretried to the caller of the
// triggering operation.
var (
	// ErrAmbiguousMatch indicates group resolution by prefix found zero or
	// several candidates instead of exactly one.
	ErrAmbiguousMatch = errors.New("catalog: ambiguous group match")

	// ErrNotArray indicates an array-only accessor was called on a
	// single-file descriptor.
	ErrNotArray = errors.New("catalog: dataset is not an array")

	// ErrMissingArrayKey indicates array member resolution was requested
	// without a member key or a usable format.
	ErrMissingArrayKey = errors.New("catalog: array member access requires a key and a format")

	// ErrNoExtension indicates a leaf object name carries no extension
	// separator, which the classifier does not accept for individual files.
	ErrNoExtension = errors.New("catalog: leaf name has no extension")
)
