package scaffold

import (
	"errors"
	"fmt"
	"os"
)

// File and directory permissions for generated artifacts.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// ErrInvalidTarget is returned when a file operation targets a directory, or
// a folder operation targets a regular file.
var ErrInvalidTarget = errors.New("invalid target")

// EnsureEmptyFile creates an empty file at path if it does not exist and
// reports whether the file is empty afterwards. Existing content is never
// touched.
func (b *Builder) EnsureEmptyFile(path string) (bool, error) {
	info, err := b.fs.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return false, fmt.Errorf("%w: expected a file path, got directory %s", ErrInvalidTarget, path)
	case err == nil:
		return info.Size() == 0, nil
	case !os.IsNotExist(err):
		return false, fmt.Errorf("accessing %s: %w", path, err)
	}

	f, err := b.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY, FilePerm)
	if err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing %s: %w", path, err)
	}
	b.log.Debug("created file", "path", path)

	info, err = b.fs.Stat(path)
	if err != nil {
		return false, fmt.Errorf("accessing %s: %w", path, err)
	}
	return info.Size() == 0, nil
}

// EnsureFolder creates path and any missing parents. When addToIgnore is
// set the folder is registered for the ignore file, whether or not it
// already existed.
func (b *Builder) EnsureFolder(path string, addToIgnore bool) error {
	info, err := b.fs.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("%w: expected a directory, got file %s", ErrInvalidTarget, path)
	case err == nil:
		// Already present.
	case !os.IsNotExist(err):
		return fmt.Errorf("accessing %s: %w", path, err)
	default:
		if err := b.fs.MkdirAll(path, DirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", path, err)
		}
		b.log.Debug("created folder", "path", path)
	}

	if addToIgnore {
		b.ignored = append(b.ignored, path)
	}
	return nil
}
