// Package ops implements the file operations the explorer offers on a
// root: creating fresh files and directories, paste-style copying, and
// soft deletion into a trash directory. Every created name goes
// through versioned naming so nothing existing is ever clobbered.
package ops

import (
	"strings"
	"time"

	"explorer/internal/errors"
	"explorer/internal/fs"
	"explorer/internal/log"
	"explorer/internal/menu"
	"explorer/internal/paths"
)

// Default basenames for freshly created entries; the user renames them
// in place.
const (
	NewFileName      = "new_file"
	NewDirectoryName = "new_directory"
)

// Service performs file operations through the filesystem capability.
type Service struct {
	fsys fs.Filesystem
}

// New creates an operations service.
func New(fsys fs.Filesystem) *Service {
	return &Service{fsys: fsys}
}

// NewFile creates an empty file under a free versioned name in the
// directory and returns its path.
func (s *Service) NewFile(directory string) (string, error) {
	path := paths.VersionedName(s.fsys, directory, NewFileName, false)
	if err := s.fsys.Create(path); err != nil {
		return "", errors.NewPathError("cannot create file", path, errors.FileOperationFailed, err)
	}
	return path, nil
}

// NewDirectory creates a directory under a free versioned name in the
// directory and returns its path.
func (s *Service) NewDirectory(directory string) (string, error) {
	path := paths.VersionedName(s.fsys, directory, NewDirectoryName, true)
	if err := s.fsys.Mkdir(path); err != nil {
		return "", errors.NewPathError("cannot create directory", path, errors.FileOperationFailed, err)
	}
	return path, nil
}

// CopyInto copies the sources into the destination directory under
// collision-free names: files get the version suffix before the
// extension, directories after the whole name. Returns the created
// paths.
func (s *Service) CopyInto(destDir string, sources []string) ([]string, error) {
	var created []string
	for _, source := range sources {
		_, basename := paths.Split(source)

		var destination string
		switch {
		case s.fsys.IsDir(source):
			destination = paths.VersionedName(s.fsys, destDir, basename, true)
			if err := s.copyTree(source, destination); err != nil {
				return created, err
			}
		case s.fsys.Exists(source):
			destination = paths.VersionedName(s.fsys, destDir, basename, false)
			if err := s.copyFile(source, destination); err != nil {
				return created, err
			}
		default:
			log.Warnf("paste source vanished: %s", source)
			continue
		}
		created = append(created, destination)
	}
	return created, nil
}

// Trash moves the given items into the trash directory under a
// timestamped, versioned name, so repeated deletions of the same name
// never collide. Returns the trashed paths.
func (s *Service) Trash(trashDir string, sources []string, now time.Time) ([]string, error) {
	if !s.fsys.IsDir(trashDir) {
		if err := s.fsys.Mkdir(trashDir); err != nil {
			return nil, errors.NewPathError("cannot create trash directory", trashDir, errors.FileOperationFailed, err)
		}
	}

	// Colons are not filesystem friendly.
	stamp := strings.ReplaceAll(now.Format("2006-01-02 15:04:05.000000"), ":", ";")

	var trashed []string
	for _, source := range sources {
		_, name := paths.Split(source)
		deletedName := name + "@" + stamp

		destination := paths.VersionedName(s.fsys, trashDir, deletedName, true)
		var err error
		if s.fsys.IsDir(source) {
			err = s.copyTree(source, destination)
		} else {
			err = s.copyFile(source, destination)
		}
		if err != nil {
			return trashed, err
		}
		if err := s.fsys.Remove(source); err != nil {
			return trashed, errors.NewPathError("cannot remove trashed item", source, errors.FileOperationFailed, err)
		}
		trashed = append(trashed, destination)
	}
	return trashed, nil
}

// OpenCommand resolves the command for opening the file with its
// associated application. An empty command means no association is
// configured and the caller should fall back to the system opener.
func (s *Service) OpenCommand(path string, openWith map[string]string) (string, error) {
	_, ext := paths.SplitExt(path)
	template, ok := openWith[ext]
	if !ok {
		return "", nil
	}
	return menu.RenderTemplate(template, nil, map[string]string{
		"path": `"` + path + `"`,
	})
}

func (s *Service) copyFile(source, destination string) error {
	data, err := s.fsys.ReadFile(source)
	if err != nil {
		return errors.NewPathError("cannot read", source, errors.FileOperationFailed, err)
	}
	if err := s.fsys.WriteFile(destination, data); err != nil {
		return errors.NewPathError("cannot write", destination, errors.FileOperationFailed, err)
	}
	return nil
}

func (s *Service) copyTree(source, destination string) error {
	if err := s.fsys.Mkdir(destination); err != nil {
		return errors.NewPathError("cannot create", destination, errors.FileOperationFailed, err)
	}
	names, err := s.fsys.ListDir(source)
	if err != nil {
		return errors.NewPathError("cannot list", source, errors.FileOperationFailed, err)
	}
	for _, name := range names {
		src := paths.Join(source, name)
		dst := paths.Join(destination, name)
		if s.fsys.IsDir(src) {
			if err := s.copyTree(src, dst); err != nil {
				return err
			}
		} else if err := s.copyFile(src, dst); err != nil {
			return err
		}
	}
	return nil
}
