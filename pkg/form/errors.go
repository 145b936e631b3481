package form

import "fmt"

// SchemaErrorKind discriminates the ways a schema definition can be rejected
// at load time.
type SchemaErrorKind string

const (
	// SchemaErrorDuplicateField marks a field id declared more than once.
	SchemaErrorDuplicateField SchemaErrorKind = "duplicate-field"
	// SchemaErrorMissingLabel marks an interactive field without a label.
	SchemaErrorMissingLabel SchemaErrorKind = "missing-label"
	// SchemaErrorEmptySchema marks a schema with zero interactive fields.
	SchemaErrorEmptySchema SchemaErrorKind = "empty-schema"
	// SchemaErrorMissingID marks a field without an id.
	SchemaErrorMissingID SchemaErrorKind = "missing-id"
	// SchemaErrorUnknownKind marks a field kind outside the enumeration.
	SchemaErrorUnknownKind SchemaErrorKind = "unknown-kind"
)

// SchemaError reports a malformed schema definition. Schema authoring is a
// design-time concern: callers must not proceed to validation after one.
type SchemaError struct {
	Kind    SchemaErrorKind
	FieldID string
}

func (e *SchemaError) Error() string {
	if e.FieldID == "" {
		return fmt.Sprintf("form: schema error: %s", e.Kind)
	}
	return fmt.Sprintf("form: schema error: %s (field %q)", e.Kind, e.FieldID)
}
