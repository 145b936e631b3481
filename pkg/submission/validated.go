package submission

// Validated is a frozen, normalized submission: trimmed values keyed by
// interactive field id plus the identifier of the schema that accepted them.
// Accessors return copies, so the record cannot be mutated after validation.
type Validated struct {
	schemaID string
	values   map[string]string
}

// SchemaID returns the identifier of the schema the submission satisfied.
func (v Validated) SchemaID() string {
	return v.schemaID
}

// Values returns a copy of the normalized mapping.
func (v Validated) Values() map[string]string {
	out := make(map[string]string, len(v.values))
	for key, value := range v.values {
		out[key] = value
	}
	return out
}

// Value returns the normalized value for a field id.
func (v Validated) Value(id string) (string, bool) {
	value, ok := v.values[id]
	return value, ok
}

// Len reports how many field values the submission carries.
func (v Validated) Len() int {
	return len(v.values)
}
