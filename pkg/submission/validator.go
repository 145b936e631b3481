package submission

import (
	"errors"
	"strings"

	"github.com/goliatone/go-issueform/pkg/form"
)

// Validator applies the per-field presence and shape rules of a form schema
// to caller-supplied values. The zero value validates without a length
// ceiling.
type Validator struct {
	maxValueLength int
}

// Option configures a Validator.
type Option func(*Validator)

// WithMaxValueLength caps accepted values at n bytes, measured after
// trimming. Zero or negative disables the ceiling.
func WithMaxValueLength(n int) Option {
	return func(v *Validator) {
		v.maxValueLength = n
	}
}

// New constructs a Validator with the supplied options.
func New(options ...Option) *Validator {
	v := &Validator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

// Validate checks values against the schema's interactive fields in schema
// order. Every field is checked even after the first failure, so a returned
// *ValidationErrors always carries the complete list. Keys that do not match
// an interactive field id are ignored, never an error.
func (v *Validator) Validate(schema *form.Schema, values map[string]string) (Validated, error) {
	if schema == nil {
		return Validated{}, errors.New("submission: schema is required")
	}
	if v == nil {
		v = &Validator{}
	}

	var fieldErrs []FieldError
	result := make(map[string]string)

	for _, def := range schema.Interactive() {
		raw, present := values[def.ID]
		trimmed := strings.TrimSpace(raw)

		if trimmed == "" {
			if def.Required {
				fieldErrs = append(fieldErrs, FieldError{FieldID: def.ID, Kind: ErrMissingRequired})
			} else if present {
				result[def.ID] = ""
			}
			continue
		}

		if v.maxValueLength > 0 && len(trimmed) > v.maxValueLength {
			fieldErrs = append(fieldErrs, FieldError{FieldID: def.ID, Kind: ErrTooLong})
			continue
		}

		result[def.ID] = trimmed
	}

	if len(fieldErrs) > 0 {
		return Validated{}, &ValidationErrors{Errors: fieldErrs}
	}

	return Validated{schemaID: schema.ID(), values: result}, nil
}

// Validate runs a zero-configuration validator. Convenience for callers that
// do not need a length ceiling.
func Validate(schema *form.Schema, values map[string]string) (Validated, error) {
	return New().Validate(schema, values)
}
