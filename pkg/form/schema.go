package form

import "strings"

// Schema is the loaded, immutable representation of a form's field
// definitions. Once constructed it is safe to share between any number of
// concurrent validation calls without locking.
type Schema struct {
	id     string
	fields []FieldDefinition
	index  map[string]int
}

// Load validates the ordered definitions and constructs a Schema. Ids must be
// unique, interactive fields must carry a label, and at least one interactive
// field must be present; violations surface as *SchemaError. Definitions are
// copied, so later mutation of defs does not affect the schema.
func Load(id string, defs []FieldDefinition) (*Schema, error) {
	fields := make([]FieldDefinition, len(defs))
	copy(fields, defs)

	index := make(map[string]int, len(fields))
	interactive := 0

	for i := range fields {
		def := &fields[i]
		def.ID = strings.TrimSpace(def.ID)

		if !def.Kind.Valid() {
			return nil, &SchemaError{Kind: SchemaErrorUnknownKind, FieldID: def.ID}
		}
		if def.ID == "" {
			return nil, &SchemaError{Kind: SchemaErrorMissingID}
		}
		if _, exists := index[def.ID]; exists {
			return nil, &SchemaError{Kind: SchemaErrorDuplicateField, FieldID: def.ID}
		}
		index[def.ID] = i

		if def.Interactive() {
			if strings.TrimSpace(def.Label) == "" {
				return nil, &SchemaError{Kind: SchemaErrorMissingLabel, FieldID: def.ID}
			}
			interactive++
		} else {
			// display-only fields never participate in required checks
			def.Required = false
		}
	}

	if interactive == 0 {
		return nil, &SchemaError{Kind: SchemaErrorEmptySchema}
	}

	return &Schema{
		id:     strings.TrimSpace(id),
		fields: fields,
		index:  index,
	}, nil
}

// MustLoad panics if the schema cannot be loaded. Useful for tests.
func MustLoad(id string, defs []FieldDefinition) *Schema {
	schema, err := Load(id, defs)
	if err != nil {
		panic(err)
	}
	return schema
}

// ID returns the schema identifier supplied at load time.
func (s *Schema) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Fields returns the ordered field definitions as a defensive copy.
func (s *Schema) Fields() []FieldDefinition {
	if s == nil {
		return nil
	}
	out := make([]FieldDefinition, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up a definition by id.
func (s *Schema) Field(id string) (FieldDefinition, bool) {
	if s == nil {
		return FieldDefinition{}, false
	}
	idx, ok := s.index[id]
	if !ok {
		return FieldDefinition{}, false
	}
	return s.fields[idx], true
}

// Interactive returns the interactive fields preserving schema order.
func (s *Schema) Interactive() []FieldDefinition {
	if s == nil {
		return nil
	}
	out := make([]FieldDefinition, 0, len(s.fields))
	for _, def := range s.fields {
		if def.Interactive() {
			out = append(out, def)
		}
	}
	return out
}

// Len reports the total number of fields, notes included.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fields)
}
