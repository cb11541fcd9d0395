package files

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"woods/logging"
)

// lockFileName is created inside the root when WithLocking is enabled.
const lockFileName = ".woods.lock"

// Manager performs file and directory operations scoped to a root path.
type Manager struct {
	root    string
	logger  *slog.Logger
	locking bool
	lock    *flock.Flock
}

// Option adjusts manager construction.
type Option func(*Manager)

// WithLogger routes operation diagnostics to the provided logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithLocking serializes mutating operations across processes sharing the
// same root through a lock file inside it. Reads stay lock-free.
func WithLocking() Option {
	return func(m *Manager) {
		m.locking = true
	}
}

// New constructs a manager rooted at root. The root follows the same
// expansion rules as member paths: tilde prefixes resolve against the home
// directory, and relative roots are joined with it.
func New(root string, opts ...Option) (*Manager, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("files: root path must not be empty")
	}
	resolved, err := expandPath(root)
	if err != nil {
		return nil, err
	}

	m := &Manager{root: resolved, logger: logging.Nop()}
	for _, opt := range opts {
		opt(m)
	}
	if m.locking {
		m.lock = flock.New(filepath.Join(m.root, lockFileName))
	}
	return m, nil
}

// Root reports the resolved root path.
func (m *Manager) Root() string {
	return m.root
}

// resolve maps a member path onto the filesystem: tilde prefixes expand,
// absolute paths pass through, everything else is joined with the root.
func (m *Manager) resolve(path string) string {
	expanded := expandTilde(path)
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded)
	}
	return filepath.Join(m.root, expanded)
}

// withLock runs fn under the root lock when locking is enabled.
func (m *Manager) withLock(fn func() error) error {
	if m.lock == nil {
		return fn()
	}
	if err := m.lock.Lock(); err != nil {
		return &FileSystemError{Op: "lock", Path: m.lock.Path(), Err: err}
	}
	defer func() {
		_ = m.lock.Unlock()
	}()
	return fn()
}

func expandPath(pathValue string) (string, error) {
	expanded := expandTilde(pathValue)
	if !filepath.IsAbs(expanded) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		expanded = filepath.Join(home, expanded)
	}
	return filepath.Clean(expanded), nil
}

func expandTilde(pathValue string) string {
	if pathValue == "~" || strings.HasPrefix(pathValue, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return pathValue
		}
		if pathValue == "~" {
			return home
		}
		return filepath.Join(home, pathValue[2:])
	}
	return pathValue
}
