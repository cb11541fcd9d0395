package config

import (
	"sort"

	"woods/schema"
)

// Composite aggregates the validated sections produced by one load. It is
// immutable and holds no back-reference to the source file.
type Composite struct {
	sections map[string]schema.Section
}

// Section returns the validated instance bound for name.
func (c *Composite) Section(name string) (schema.Section, bool) {
	section, ok := c.sections[name]
	return section, ok
}

// Names reports the bound section names in sorted order.
func (c *Composite) Names() []string {
	names := make([]string, 0, len(c.sections))
	for name := range c.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of bound sections.
func (c *Composite) Len() int {
	return len(c.sections)
}

// As returns the section bound for name when its concrete type is T.
func As[T schema.Section](c *Composite, name string) (T, bool) {
	var zero T
	section, ok := c.sections[name]
	if !ok {
		return zero, false
	}
	typed, ok := section.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
