package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// JSONSchema reflects the section registered for name into a JSON Schema
// document. Field names come from the models' json tags.
func (r *Registry) JSONSchema(name string) (*jsonschema.Schema, error) {
	factory, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("json schema: no section registered for %q", name)
	}
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(factory()), nil
}

// WriteSchemas writes one <name>.schema.json file per registered section
// into dir, creating it when needed.
func (r *Registry) WriteSchemas(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	for _, name := range r.Names() {
		document, err := r.JSONSchema(name)
		if err != nil {
			return err
		}
		encoded, err := json.MarshalIndent(document, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal schema for %q: %w", name, err)
		}
		path := filepath.Join(dir, name+".schema.json")
		if err := os.WriteFile(path, append(encoded, '\n'), 0o644); err != nil {
			return fmt.Errorf("write schema for %q: %w", name, err)
		}
	}
	return nil
}
