package files

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// DirOption adjusts CreateDir behaviour.
type DirOption func(*dirSpec)

type dirSpec struct {
	mode      fs.FileMode
	overwrite bool
	subdirs   []string
}

// WithMode sets the mode for the created directory and its subdirectories.
func WithMode(mode fs.FileMode) DirOption {
	return func(s *dirSpec) { s.mode = mode }
}

// WithOverwrite removes an existing directory of the same name first.
func WithOverwrite() DirOption {
	return func(s *dirSpec) { s.overwrite = true }
}

// WithSubdirs creates the named subdirectories inside the new directory.
// Nested trees are expressed with path separators, e.g. "raw/2026".
func WithSubdirs(names ...string) DirOption {
	return func(s *dirSpec) { s.subdirs = append(s.subdirs, names...) }
}

// CreateDir creates a directory (and any missing parents) under the root.
func (m *Manager) CreateDir(name string, opts ...DirOption) error {
	spec := dirSpec{mode: 0o755}
	for _, opt := range opts {
		opt(&spec)
	}
	target := m.resolve(name)

	return m.withLock(func() error {
		if spec.overwrite {
			if info, err := os.Stat(target); err == nil {
				if !info.IsDir() {
					return &FileSystemError{Op: "create dir", Path: target, Err: errors.New("existing path is a file")}
				}
				if err := os.RemoveAll(target); err != nil {
					return wrapOS("create dir", target, err)
				}
			}
		}
		if err := os.MkdirAll(target, spec.mode); err != nil {
			return wrapOS("create dir", target, err)
		}
		for _, sub := range spec.subdirs {
			if err := os.MkdirAll(filepath.Join(target, sub), spec.mode); err != nil {
				return wrapOS("create dir", filepath.Join(target, sub), err)
			}
		}
		m.logger.Debug("created directory", "path", target)
		return nil
	})
}

// CreateFile creates an empty file, failing on a name collision.
func (m *Manager) CreateFile(name string) error {
	target := m.resolve(name)
	return m.withLock(func() error {
		handle, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err != nil {
			return wrapOS("create file", target, err)
		}
		if err := handle.Close(); err != nil {
			return wrapOS("create file", target, err)
		}
		m.logger.Debug("created file", "path", target)
		return nil
	})
}

// CreateFiles creates empty files inside the sub directory, which may be
// empty to target the root itself.
func (m *Manager) CreateFiles(sub string, names ...string) error {
	for _, name := range names {
		if err := m.CreateFile(filepath.Join(sub, name)); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile atomically replaces the file at name with data. The write goes
// through a temp file and rename so readers never observe a partial file.
func (m *Manager) WriteFile(name string, data []byte) error {
	target := m.resolve(name)
	return m.withLock(func() error {
		pending, err := renameio.NewPendingFile(target)
		if err != nil {
			return wrapOS("write file", target, err)
		}
		defer func() {
			_ = pending.Cleanup()
		}()
		if _, err := pending.Write(data); err != nil {
			return wrapOS("write file", target, err)
		}
		if err := pending.CloseAtomicallyReplace(); err != nil {
			return wrapOS("write file", target, err)
		}
		m.logger.Debug("wrote file", "path", target, "bytes", len(data))
		return nil
	})
}

// Delete removes a file or directory tree. Deleting a missing path is an
// error.
func (m *Manager) Delete(name string) error {
	target := m.resolve(name)
	return m.withLock(func() error {
		if _, err := os.Stat(target); err != nil {
			return wrapOS("delete", target, err)
		}
		if err := os.RemoveAll(target); err != nil {
			return wrapOS("delete", target, err)
		}
		m.logger.Debug("deleted", "path", target)
		return nil
	})
}

// Rename renames a file or directory within the root. An existing target is
// a collision, not an overwrite.
func (m *Manager) Rename(oldName, newName string) error {
	source := m.resolve(oldName)
	target := m.resolve(newName)
	return m.withLock(func() error {
		if _, err := os.Stat(target); err == nil {
			return &FileSystemError{Op: "rename", Path: target, Err: fs.ErrExist}
		}
		if err := os.Rename(source, target); err != nil {
			return wrapOS("rename", source, err)
		}
		m.logger.Debug("renamed", "from", source, "to", target)
		return nil
	})
}

// Move relocates src to dst. A plain rename is attempted first; when the
// destination is on another device the file is streamed over and the source
// removed.
func (m *Manager) Move(src, dst string) error {
	source := m.resolve(src)
	target := m.resolve(dst)
	return m.withLock(func() error {
		if _, err := os.Stat(target); err == nil {
			return &FileSystemError{Op: "move", Path: target, Err: fs.ErrExist}
		}

		err := os.Rename(source, target)
		if err == nil {
			m.logger.Debug("moved", "from", source, "to", target)
			return nil
		}
		var linkErr *os.LinkError
		if !errors.As(err, &linkErr) {
			return wrapOS("move", source, err)
		}

		info, statErr := os.Stat(source)
		if statErr != nil {
			return wrapOS("move", source, statErr)
		}
		if info.IsDir() {
			// Directory moves across devices are not supported.
			return wrapOS("move", source, err)
		}
		if copyErr := copyFile(source, target, info.Mode().Perm()); copyErr != nil {
			return wrapOS("move", source, copyErr)
		}
		if removeErr := os.Remove(source); removeErr != nil {
			return wrapOS("move", source, removeErr)
		}
		m.logger.Debug("moved", "from", source, "to", target, "copied", true)
		return nil
	})
}
