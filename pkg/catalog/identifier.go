// Package catalog maintains a persisted index mapping project identifiers to
// the data artifacts stored under an object-store prefix.
package catalog

import (
	"strings"
)

// Normalize canonicalizes a project identifier so the same notation is used
// across the catalog: trimmed, lower-cased, truncated at the first underscore,
// hyphens removed. "SGDS-123_do_something" becomes "sgds123".
//
// Normalization is idempotent. Any input is accepted, including the empty
// string.
func Normalize(raw string) string {
	id := strings.ToLower(strings.TrimSpace(raw))
	id, _, _ = strings.Cut(id, "_")
	return strings.ReplaceAll(id, "-", "")
}
