package objectstore

import (
	"strings"
)

// ListOptions controls filtering of listing results.
type ListOptions struct {
	// NamePattern keeps only entries whose final segment contains the pattern.
	NamePattern string
	// Suffix keeps only entries ending with the given suffix.
	Suffix string
}

// ListOption configures a List call.
type ListOption func(*ListOptions)

// WithNamePattern filters listed entries by a substring of their final path
// segment. Used to resolve a group identifier to its storage prefix.
func WithNamePattern(pattern string) ListOption {
	return func(o *ListOptions) {
		o.NamePattern = pattern
	}
}

// WithSuffix filters listed entries by suffix, e.g. a file extension.
func WithSuffix(suffix string) ListOption {
	return func(o *ListOptions) {
		o.Suffix = suffix
	}
}

// BuildListOptions applies the given options to a zero ListOptions.
func BuildListOptions(opts ...ListOption) ListOptions {
	var o ListOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Match reports whether an entry passes the configured filters.
func (o ListOptions) Match(entry string) bool {
	if o.NamePattern != "" && !strings.Contains(LastSegment(entry), o.NamePattern) {
		return false
	}
	if o.Suffix != "" && !strings.HasSuffix(strings.TrimSuffix(entry, "/"), o.Suffix) {
		return false
	}
	return true
}
