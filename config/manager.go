package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dario.cat/mergo"
	"github.com/pelletier/go-toml/v2"

	"woods/logging"
	"woods/schema"
)

//go:embed sample_config.json
var sampleConfig string

// Manager binds configuration documents to the schemas in its registry.
type Manager struct {
	registry     *schema.Registry
	logger       *slog.Logger
	strict       bool
	strictFields bool
}

// Option adjusts manager behaviour.
type Option func(*Manager)

// WithStrict rejects document sections that have no registered schema. The
// default is to skip them with a warning.
func WithStrict() Option {
	return func(m *Manager) { m.strict = true }
}

// WithStrictFields rejects keys inside a matched section that its schema
// does not declare.
func WithStrictFields() Option {
	return func(m *Manager) { m.strictFields = true }
}

// WithLogger routes load diagnostics to the provided logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New constructs a manager over the provided registry.
func New(registry *schema.Registry, opts ...Option) *Manager {
	m := &Manager{registry: registry, logger: logging.Nop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load reads, parses, and binds one configuration document. An empty path
// falls back to DefaultConfigPath. The returned Composite is fresh on every
// call and holds no reference to the file.
func (m *Manager) Load(path string) (*Composite, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	document, err := readDocument(resolved)
	if err != nil {
		return nil, err
	}
	return m.bind(document)
}

// LoadMerged loads several documents and overlays them in order before
// binding: later documents override earlier ones key by key, nested maps
// merging recursively.
func (m *Manager) LoadMerged(paths ...string) (*Composite, error) {
	if len(paths) == 0 {
		return nil, errors.New("load merged: no paths provided")
	}
	merged := map[string]any{}
	for _, path := range paths {
		resolved, err := resolvePath(path)
		if err != nil {
			return nil, err
		}
		document, err := readDocument(resolved)
		if err != nil {
			return nil, err
		}
		if err := mergo.Merge(&merged, document, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge %s: %w", resolved, err)
		}
	}
	return m.bind(merged)
}

func readDocument(path string) (map[string]any, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	document := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(payload, &document); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	default:
		if err := json.Unmarshal(payload, &document); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	}
	return document, nil
}

func (m *Manager) bind(document map[string]any) (*Composite, error) {
	names := make([]string, 0, len(document))
	for name := range document {
		names = append(names, name)
	}
	sort.Strings(names)

	sections := make(map[string]schema.Section, len(names))
	var failures []error
	for _, name := range names {
		factory, ok := m.registry.Lookup(name)
		if !ok {
			if m.strict {
				failures = append(failures, &ValidationError{
					Section: name,
					Fields:  []FieldError{{Message: "no schema registered for section"}},
				})
			} else {
				m.logger.Warn("skipping section without registered schema", "section", name)
			}
			continue
		}

		raw, ok := document[name].(map[string]any)
		if !ok {
			failures = append(failures, &ValidationError{
				Section: name,
				Fields:  []FieldError{{Message: fmt.Sprintf("expected an object, got %T", document[name])}},
			})
			continue
		}

		target := factory()
		if verr := bindSection(name, raw, target, m.strictFields); verr != nil {
			failures = append(failures, verr)
			continue
		}
		sections[name] = target
		m.logger.Debug("section bound", "section", name)
	}

	if len(failures) > 0 {
		return nil, errors.Join(failures...)
	}
	return &Composite{sections: sections}, nil
}

// CreateSample writes the embedded sample configuration to path, creating
// parent directories when needed.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
