package files

import (
	"errors"
	"fmt"
	"io/fs"
)

// NotFoundError reports a path that does not exist. It wraps the underlying
// OS error, so errors.Is(err, fs.ErrNotExist) holds.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// FileSystemError reports a failed filesystem operation, carrying the
// operation name and the underlying OS error.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error { return e.Err }

func wrapOS(op, path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &NotFoundError{Path: path, Err: err}
	}
	return &FileSystemError{Op: op, Path: path, Err: err}
}
