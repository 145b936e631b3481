// Package submission validates candidate submissions against a loaded form
// schema and produces normalized, frozen submission records. Validation is
// pure and deterministic: the same schema and values always yield the same
// result, and a shared schema can serve concurrent calls.
package submission
