package schema

import (
	"reflect"
	"strings"
	"time"
)

// RequiredPaths reports the dotted key paths of every field in the section
// tagged `config:"required"`, descending into nested structs. Key names come
// from the mapstructure tag, falling back to the lowercased field name.
func RequiredPaths(section Section) []string {
	t := reflect.TypeOf(section)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	var paths []string
	collectRequired(t, nil, &paths)
	return paths
}

func collectRequired(t reflect.Type, prefix []string, out *[]string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		key := fieldKey(field)
		if key == "-" {
			continue
		}
		path := appendPath(prefix, key)
		if tagHasRequired(field) {
			*out = append(*out, strings.Join(path, "."))
		}
		ft := field.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct && ft != reflect.TypeOf(time.Time{}) {
			collectRequired(ft, path, out)
		}
	}
}

func fieldKey(field reflect.StructField) string {
	tag := field.Tag.Get("mapstructure")
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(field.Name)
	}
	return name
}

func tagHasRequired(field reflect.StructField) bool {
	for _, part := range strings.Split(field.Tag.Get("config"), ",") {
		if strings.TrimSpace(part) == "required" {
			return true
		}
	}
	return false
}

func appendPath(prefix []string, key string) []string {
	path := make([]string, 0, len(prefix)+1)
	path = append(path, prefix...)
	return append(path, key)
}
