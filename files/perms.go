package files

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// PermissionString renders a permission mode as rwx triplets, e.g. 0o755
// becomes "rwxr-xr-x".
func PermissionString(mode fs.FileMode) string {
	const symbols = "rwxrwxrwx"
	var out [9]byte
	for i := range out {
		if mode&(1<<uint(8-i)) != 0 {
			out[i] = symbols[i]
		} else {
			out[i] = '-'
		}
	}
	return string(out[:])
}

// EnsurePermissions walks the directory tree under path and corrects every
// directory whose mode differs from the requested one. A missing path is
// not an error.
func (m *Manager) EnsurePermissions(path string, mode fs.FileMode) error {
	target := m.resolve(path)
	if _, err := os.Stat(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return wrapOS("ensure permissions", target, err)
	}

	return filepath.WalkDir(target, func(current string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return wrapOS("ensure permissions", current, walkErr)
		}
		if !entry.IsDir() {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return wrapOS("ensure permissions", current, err)
		}
		if info.Mode().Perm() == mode.Perm() {
			return nil
		}
		if err := os.Chmod(current, mode.Perm()); err != nil {
			return wrapOS("ensure permissions", current, err)
		}
		m.logger.Debug("corrected permissions",
			"path", current,
			"from", PermissionString(info.Mode().Perm()),
			"to", PermissionString(mode.Perm()))
		return nil
	})
}
