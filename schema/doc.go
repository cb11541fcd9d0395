// Package schema declares the contracts configuration sections are bound
// against.
//
// Key responsibilities:
//   - The Section interface naming the document key a model binds to, plus
//     the optional Validator hook run after binding.
//   - A Registry mapping section names to factories that produce fresh,
//     default-filled instances for each load.
//   - Required-field discovery over `config:"required"` struct tags,
//     reported as dotted key paths.
//   - JSON Schema export for registered sections.
//
// Consumers declare their own section models and register them; the models
// package ships the built-in ones.
package schema
