// Package config loads configuration documents and binds them to declared
// section schemas.
//
// A Manager walks the top-level keys of a JSON (or TOML) document and, for
// each key with a registered schema, decodes the nested object into a fresh
// typed instance. Binding collects every field-level violation instead of
// stopping at the first, and the aggregate result is an immutable Composite
// keyed by section name.
//
// Sections without a registered schema are skipped with a warning by
// default; WithStrict turns them into validation failures. There is no
// caching and no write-back: every Load reads the file, binds it, and
// returns a fresh Composite.
package config
