// Package fs abstracts the host filesystem calls the explorer core
// depends on (directory tests, listings, rename, removal) behind a
// small capability interface, so the path engine and the view layer can
// be exercised against an in-memory tree without touching the disk.
package fs

import (
	"os"
)

// Filesystem is the capability the core needs from the host OS.
// Implementations must answer synchronously; every check is inherently
// racy against concurrent external changes, which callers accept.
type Filesystem interface {
	// IsDir reports whether path names an existing directory.
	IsDir(path string) bool

	// Exists reports whether path names an existing entry of any kind.
	Exists(path string) bool

	// ListDir returns the entry names of the directory, in the order
	// the underlying listing yields them.
	ListDir(path string) ([]string, error)

	// IsJunction reports whether path is a directory reparse point
	// (or, off Windows, a symlink to a directory, which poses the same
	// traversal-loop hazard).
	IsJunction(path string) bool

	// Rename renames oldPath to newPath.
	Rename(oldPath, newPath string) error

	// Remove removes the entry and, for directories, its contents.
	Remove(path string) error

	// Create creates an empty file, like touch. The file must not be
	// truncated if it already exists.
	Create(path string) error

	// Mkdir creates a single directory.
	Mkdir(path string) error

	// ReadFile returns the contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes a file, creating it if needed.
	WriteFile(path string, data []byte) error
}

// OS is the real filesystem.
type OS struct{}

// NewOS returns the host filesystem capability.
func NewOS() *OS {
	return &OS{}
}

func (*OS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (*OS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (*OS) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (*OS) IsJunction(path string) bool {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return false
	}
	target, err := os.Stat(path)
	return err == nil && target.IsDir()
}

func (*OS) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

func (*OS) Remove(path string) error {
	return os.RemoveAll(path)
}

func (*OS) Create(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

func (*OS) Mkdir(path string) error {
	return os.Mkdir(path, 0755)
}

func (*OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (*OS) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
