package config

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"woods/schema"
)

// bindSection decodes raw into target, collecting every violation instead of
// stopping at the first.
func bindSection(name string, raw map[string]any, target schema.Section, strictFields bool) *ValidationError {
	var fields []FieldError

	for _, path := range schema.RequiredPaths(target) {
		if !hasPath(raw, path) {
			fields = append(fields, FieldError{Field: path, Message: "required field missing"})
		}
	}

	metadata := &mapstructure.Metadata{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		Metadata:   metadata,
		TagName:    "mapstructure",
		DecodeHook: mapstructure.DecodeHookFuncType(integralNumberHook),
	})
	if err != nil {
		return &ValidationError{Section: name, Fields: []FieldError{{Message: err.Error()}}}
	}
	if err := decoder.Decode(raw); err != nil {
		for _, cause := range flattenErrors(err) {
			fields = append(fields, fieldErrorFromCause(cause))
		}
	}

	if strictFields {
		unused := append([]string(nil), metadata.Unused...)
		sort.Strings(unused)
		for _, key := range unused {
			fields = append(fields, FieldError{Field: key, Message: "unknown field"})
		}
	}

	// Cross-field validation only makes sense once the fields themselves
	// decoded cleanly.
	if len(fields) == 0 {
		if validator, ok := target.(schema.Validator); ok {
			if err := validator.Validate(); err != nil {
				for _, cause := range flattenErrors(err) {
					fields = append(fields, FieldError{Message: cause.Error()})
				}
			}
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Section: name, Fields: fields}
}

// hasPath reports whether the dotted key path resolves inside raw. A null
// value counts as absent, so `"index": null` cannot satisfy a required field.
func hasPath(raw map[string]any, path string) bool {
	keys := strings.Split(path, ".")
	current := raw
	for i, key := range keys {
		value, ok := current[key]
		if !ok || value == nil {
			return false
		}
		if i == len(keys)-1 {
			return true
		}
		next, ok := value.(map[string]any)
		if !ok {
			return false
		}
		current = next
	}
	return false
}

// integralNumberHook keeps numeric coercion safe: JSON numbers arrive as
// float64 and may land in integer fields only when they carry no fraction.
func integralNumberHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
	default:
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	value := reflect.ValueOf(data).Float()
	if value != math.Trunc(value) {
		return nil, fmt.Errorf("expected an integer, got %v", data)
	}
	return data, nil
}

// flattenErrors expands joined and aggregated errors into their leaves.
func flattenErrors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, inner := range joined.Unwrap() {
			out = append(out, flattenErrors(inner)...)
		}
		return out
	}
	if wrapped, ok := err.(interface{ WrappedErrors() []error }); ok {
		var out []error
		for _, inner := range wrapped.WrappedErrors() {
			out = append(out, flattenErrors(inner)...)
		}
		return out
	}
	return []error{err}
}

// fieldErrorFromCause extracts the quoted key path decode errors carry,
// e.g. "cannot parse 'index' as int".
func fieldErrorFromCause(cause error) FieldError {
	message := cause.Error()
	if start := strings.IndexByte(message, '\''); start >= 0 {
		rest := message[start+1:]
		if end := strings.IndexByte(rest, '\''); end > 0 {
			return FieldError{Field: rest[:end], Message: message}
		}
	}
	return FieldError{Message: message}
}
