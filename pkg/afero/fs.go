// Package afero re-exports the spf13/afero filesystem abstraction so catalog
// components can be exercised against an in-memory filesystem in tests.
package afero

import (
	"github.com/spf13/afero"
)

// Fs is the filesystem interface used throughout the catalog.
type Fs = afero.Fs

// NewOsFs returns a filesystem backed by the host OS.
func NewOsFs() Fs {
	return afero.NewOsFs()
}

// NewMemMapFs returns an in-memory filesystem.
func NewMemMapFs() Fs {
	return afero.NewMemMapFs()
}
