package files

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// ListOptions filters List results.
type ListOptions struct {
	// Extension keeps only file names ending with this extension. A missing
	// leading dot is tolerated, so "jpg" and ".jpg" behave the same.
	Extension string
	// Recursive descends into subdirectories.
	Recursive bool
	// IncludeDir returns full paths instead of bare file names.
	IncludeDir bool
}

// List returns the files under dir in directory-listing order. The result is
// empty, never nil, when nothing matches.
func (m *Manager) List(dir string, opts ListOptions) ([]string, error) {
	target := m.resolve(dir)
	info, err := os.Stat(target)
	if err != nil {
		return nil, wrapOS("list", target, err)
	}
	if !info.IsDir() {
		return nil, &FileSystemError{Op: "list", Path: target, Err: errors.New("not a directory")}
	}

	extension := normalizeExtension(opts.Extension)
	results := []string{}
	err = filepath.WalkDir(target, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			if path != target && !opts.Recursive {
				return fs.SkipDir
			}
			return nil
		}
		name := entry.Name()
		if extension != "" && !strings.HasSuffix(name, extension) {
			return nil
		}
		if opts.IncludeDir {
			results = append(results, path)
		} else {
			results = append(results, name)
		}
		return nil
	})
	if err != nil {
		return nil, wrapOS("list", target, err)
	}
	return results, nil
}

// FilesByExtension returns the names of files directly inside dir whose name
// ends with extension.
func (m *Manager) FilesByExtension(dir, extension string) ([]string, error) {
	return m.List(dir, ListOptions{Extension: extension})
}

// FilesRecursive lists file names under dir, descending into subdirectories
// when recursive is true.
func (m *Manager) FilesRecursive(dir string, recursive bool) ([]string, error) {
	return m.List(dir, ListOptions{Recursive: recursive})
}

// FilePathsWithDir lists files directly inside dir, as full paths when
// includeDir is true.
func (m *Manager) FilePathsWithDir(dir string, includeDir bool) ([]string, error) {
	return m.List(dir, ListOptions{IncludeDir: includeDir})
}

// Walk returns a lazy depth-first traversal over every file path under dir.
// The sequence is restartable: each range performs a fresh walk.
func (m *Manager) Walk(dir string) iter.Seq2[string, error] {
	target := m.resolve(dir)
	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(target, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				if !yield("", wrapOS("walk", path, walkErr)) {
					return fs.SkipAll
				}
				return nil
			}
			if entry.IsDir() {
				return nil
			}
			if !yield(path, nil) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

func normalizeExtension(extension string) string {
	extension = strings.TrimSpace(extension)
	if extension == "" {
		return ""
	}
	if !strings.HasPrefix(extension, ".") {
		return "." + extension
	}
	return extension
}
