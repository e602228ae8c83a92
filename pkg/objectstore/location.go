package objectstore

import (
	"fmt"
	"strings"
)

const locationScheme = "s3://"

// IsRemote reports whether the given path is an object-store location.
func IsRemote(path string) bool {
	return strings.HasPrefix(path, locationScheme)
}

// ParseLocation splits an "s3://bucket/key" location into bucket and key.
func ParseLocation(location string) (bucket, key string, err error) {
	if !IsRemote(location) {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidLocation, location)
	}

	rest := strings.TrimPrefix(location, locationScheme)
	parts := strings.SplitN(rest, "/", 2)
	if parts[0] == "" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidLocation, location)
	}
	if len(parts) == 1 {
		return parts[0], "", nil
	}
	return parts[0], parts[1], nil
}

// FormatLocation builds an "s3://bucket/key" location string.
func FormatLocation(bucket, key string) string {
	return locationScheme + bucket + "/" + key
}

// JoinLocation joins path elements onto a base location with single slashes.
// A trailing slash on the final element is preserved.
func JoinLocation(base string, elems ...string) string {
	joined := strings.TrimSuffix(base, "/")
	for _, e := range elems {
		e = strings.Trim(e, "/")
		if e == "" {
			continue
		}
		joined += "/" + e
	}
	if len(elems) > 0 && strings.HasSuffix(elems[len(elems)-1], "/") {
		joined += "/"
	}
	return joined
}

// LastSegment returns the final path segment of a location, ignoring any
// trailing slash. For "s3://b/p/SGDS-123/" it returns "SGDS-123".
func LastSegment(location string) string {
	trimmed := strings.TrimSuffix(location, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

// ParentPrefix returns everything before the final path segment, without a
// trailing slash. For "s3://b/p/x.csv" it returns "s3://b/p".
func ParentPrefix(location string) string {
	trimmed := strings.TrimSuffix(location, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}
