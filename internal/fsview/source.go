// Package fsview adapts a native directory listing into the re-sorted,
// filtered view the file tree presents: directories before files,
// junctions and ignore-matched rows hidden, and rename semantics that
// survive case-insensitive filesystem layers.
package fsview

import (
	"fmt"
	"os"

	"explorer/internal/fs"
	"explorer/internal/paths"
)

// Entry is one row of the native source: a path and what it is.
type Entry struct {
	Path     string
	Dir      bool
	Junction bool
}

// Source is the native directory model the view wraps.
type Source interface {
	// Entries lists the direct children of dir in native listing order.
	Entries(dir string) ([]Entry, error)

	// IsDir reports whether path names a directory.
	IsDir(path string) bool

	// Rename renames an entry through the model.
	Rename(oldPath, newPath string) error

	// Remove removes an entry and any contents.
	Remove(path string) error
}

// DirSource implements Source over the filesystem capability.
type DirSource struct {
	fsys fs.Filesystem
}

// NewDirSource returns a Source backed by the given filesystem.
func NewDirSource(fsys fs.Filesystem) *DirSource {
	return &DirSource{fsys: fsys}
}

func (s *DirSource) Entries(dir string) ([]Entry, error) {
	names, err := s.fsys.ListDir(dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		path := paths.Join(dir, name)
		entries = append(entries, Entry{
			Path:     path,
			Dir:      s.fsys.IsDir(path),
			Junction: s.fsys.IsJunction(path),
		})
	}
	return entries, nil
}

func (s *DirSource) IsDir(path string) bool {
	return s.fsys.IsDir(path)
}

// Rename refuses any rename whose target already exists. On a
// case-insensitive filesystem that includes case-only renames — the
// target "exists" because it is the source — which is exactly the
// behavior the view layer works around with a direct filesystem
// rename.
func (s *DirSource) Rename(oldPath, newPath string) error {
	if s.fsys.Exists(newPath) {
		return fmt.Errorf("rename %s: %w", newPath, os.ErrExist)
	}
	return s.fsys.Rename(oldPath, newPath)
}

func (s *DirSource) Remove(path string) error {
	return s.fsys.Remove(path)
}
