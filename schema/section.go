package schema

// Section is implemented by every configuration section model. SectionName
// reports the top-level document key the model binds to.
type Section interface {
	SectionName() string
}

// Validator is an optional hook run after a section has been bound and its
// fields populated. The returned error may wrap several violations via
// errors.Join; each becomes its own field-level cause.
type Validator interface {
	Validate() error
}

// Factory produces a fresh section instance with its declared defaults
// already applied. Binding decodes the document over the returned value, so
// absent optional keys keep their defaults.
type Factory func() Section
