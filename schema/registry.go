package schema

import (
	"fmt"
	"sort"
)

// Registry maps section names to the factories that build their typed
// instances. Registration happens once during setup; lookups afterwards are
// read-only.
type Registry struct {
	entries map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Factory)}
}

// Register adds a section factory keyed by the name its instances report.
// Registering the same name twice is an error.
func (r *Registry) Register(factory Factory) error {
	if factory == nil {
		return fmt.Errorf("register section: nil factory")
	}
	instance := factory()
	if instance == nil {
		return fmt.Errorf("register section: factory produced nil")
	}
	name := instance.SectionName()
	if name == "" {
		return fmt.Errorf("register section: empty section name")
	}
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("register section: %q already registered", name)
	}
	r.entries[name] = factory
	return nil
}

// MustRegister panics when registration fails. Intended for package-level
// setup where a failure is a programming error.
func (r *Registry) MustRegister(factory Factory) {
	if err := r.Register(factory); err != nil {
		panic(err)
	}
}

// Lookup returns the factory registered for name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	factory, ok := r.entries[name]
	return factory, ok
}

// Names reports the registered section names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of registered sections.
func (r *Registry) Len() int {
	return len(r.entries)
}
