package form_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-issueform/pkg/form"
)

func bugReportFields() []form.FieldDefinition {
	return []form.FieldDefinition{
		{
			ID:          "_note-1",
			Kind:        form.KindMarkdownNote,
			Description: "Thanks for taking the time to fill out this bug report!",
		},
		{
			ID:          "email",
			Kind:        form.KindShortText,
			Label:       "Email",
			Description: "Which email address did you try to verify?",
			Placeholder: "someone@example.com",
		},
		{
			ID:          "what-happened",
			Kind:        form.KindLongText,
			Label:       "What happened?",
			Placeholder: "Tell us what you see!",
			Required:    true,
		},
		{
			ID:         "logs",
			Kind:       form.KindLongText,
			Label:      "Relevant log output",
			RenderMode: "shell",
		},
	}
}

func TestLoad(t *testing.T) {
	schema, err := form.Load("bug-report", bugReportFields())
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}

	if schema.ID() != "bug-report" {
		t.Fatalf("schema id mismatch: %q", schema.ID())
	}
	if schema.Len() != 4 {
		t.Fatalf("expected 4 fields, got %d", schema.Len())
	}

	field, ok := schema.Field("logs")
	if !ok {
		t.Fatalf("logs field missing")
	}
	if field.RenderMode != "shell" {
		t.Fatalf("render mode not preserved: %q", field.RenderMode)
	}

	interactive := schema.Interactive()
	ids := make([]string, 0, len(interactive))
	for _, def := range interactive {
		ids = append(ids, def.ID)
	}
	want := []string{"email", "what-happened", "logs"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("interactive order mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_SchemaErrors(t *testing.T) {
	cases := []struct {
		name string
		defs []form.FieldDefinition
		kind form.SchemaErrorKind
	}{
		{
			name: "duplicate id",
			defs: []form.FieldDefinition{
				{ID: "email", Kind: form.KindShortText, Label: "Email"},
				{ID: "email", Kind: form.KindLongText, Label: "Email again"},
			},
			kind: form.SchemaErrorDuplicateField,
		},
		{
			name: "missing label",
			defs: []form.FieldDefinition{
				{ID: "email", Kind: form.KindShortText},
			},
			kind: form.SchemaErrorMissingLabel,
		},
		{
			name: "blank label",
			defs: []form.FieldDefinition{
				{ID: "email", Kind: form.KindShortText, Label: "   "},
			},
			kind: form.SchemaErrorMissingLabel,
		},
		{
			name: "no interactive fields",
			defs: []form.FieldDefinition{
				{ID: "_note-1", Kind: form.KindMarkdownNote, Description: "hello"},
			},
			kind: form.SchemaErrorEmptySchema,
		},
		{
			name: "empty definitions",
			defs: nil,
			kind: form.SchemaErrorEmptySchema,
		},
		{
			name: "missing id",
			defs: []form.FieldDefinition{
				{Kind: form.KindShortText, Label: "Email"},
			},
			kind: form.SchemaErrorMissingID,
		},
		{
			name: "unknown kind",
			defs: []form.FieldDefinition{
				{ID: "rating", Kind: form.FieldKind("stars"), Label: "Rating"},
			},
			kind: form.SchemaErrorUnknownKind,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := form.Load("broken", tc.defs)
			if err == nil {
				t.Fatalf("expected schema error")
			}
			var schemaErr *form.SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("expected *SchemaError, got %T: %v", err, err)
			}
			if schemaErr.Kind != tc.kind {
				t.Fatalf("kind mismatch: want %s, got %s", tc.kind, schemaErr.Kind)
			}
		})
	}
}

func TestLoad_NotesNeverRequired(t *testing.T) {
	defs := bugReportFields()
	defs[0].Required = true

	schema, err := form.Load("bug-report", defs)
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	note, ok := schema.Field("_note-1")
	if !ok {
		t.Fatalf("note field missing")
	}
	if note.Required {
		t.Fatalf("markdown note must not stay required")
	}
}

func TestSchema_Immutable(t *testing.T) {
	defs := bugReportFields()
	schema, err := form.Load("bug-report", defs)
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}

	// mutating the input slice after load must not leak into the schema
	defs[1].Label = "tampered"
	if field, _ := schema.Field("email"); field.Label != "Email" {
		t.Fatalf("schema shares storage with caller slice")
	}

	// mutating accessor output must not leak either
	fields := schema.Fields()
	fields[1].Label = "tampered"
	if field, _ := schema.Field("email"); field.Label != "Email" {
		t.Fatalf("Fields() exposes internal storage")
	}
}
