package submission

import "fmt"

// FieldErrorKind discriminates per-field validation failures.
type FieldErrorKind string

const (
	// ErrMissingRequired marks a required field that is absent or blank.
	ErrMissingRequired FieldErrorKind = "missing-required"
	// ErrTooLong marks a value exceeding the validator's length ceiling.
	ErrTooLong FieldErrorKind = "too-long"
)

// FieldError pinpoints a single offending field in a rejected submission.
type FieldError struct {
	FieldID string         `json:"fieldId"`
	Kind    FieldErrorKind `json:"kind"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("submission: field %q: %s", e.FieldID, e.Kind)
}

// ValidationErrors carries the complete list of field errors in schema order
// so callers can surface feedback for every offending field at once.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("submission: %d invalid fields", len(e.Errors))
}
