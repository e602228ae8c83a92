package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// SnapshotStore persists the whole catalog mapping as one opaque snapshot.
// Every save overwrites the previous snapshot; there is no append log, no
// versioning and no schema migration.
type SnapshotStore interface {
	Save(contents Contents) error
	Load() (Contents, error)
	// Exists reports whether a snapshot is present at all.
	Exists() bool
}

// FileSnapshotStore stores the snapshot as a JSON file on an afero
// filesystem.
type FileSnapshotStore struct {
	fs   afero.Fs
	path string
}

// NewFileSnapshotStore creates a snapshot store writing to path.
func NewFileSnapshotStore(fs afero.Fs, path string) *FileSnapshotStore {
	return &FileSnapshotStore{fs: fs, path: path}
}

// Save serializes the contents and overwrites the snapshot file.
func (s *FileSnapshotStore) Save(contents Contents) error {
	data, err := json.MarshalIndent(contents, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize catalog snapshot: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog snapshot to %s: %w", s.path, err)
	}
	return nil
}

// Load deserializes the snapshot file.
func (s *FileSnapshotStore) Load() (Contents, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog snapshot from %s: %w", s.path, err)
	}

	var contents Contents
	if err := json.Unmarshal(data, &contents); err != nil {
		return nil, fmt.Errorf("failed to deserialize catalog snapshot from %s: %w", s.path, err)
	}
	return contents, nil
}

// Exists reports whether the snapshot file is present.
func (s *FileSnapshotStore) Exists() bool {
	ok, err := afero.Exists(s.fs, s.path)
	return err == nil && ok
}
