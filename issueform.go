package issueform

import (
	"context"

	"github.com/goliatone/go-issueform/pkg/form"
	"github.com/goliatone/go-issueform/pkg/formdoc"
	"github.com/goliatone/go-issueform/pkg/intake"
	"github.com/goliatone/go-issueform/pkg/submission"
)

// Form aliases the parsed form document exported via the root package for
// convenience.
type Form = formdoc.Form

// Schema aliases the validated field collection.
type Schema = form.Schema

// FieldDefinition aliases a single field declaration.
type FieldDefinition = form.FieldDefinition

// Validated aliases a frozen, validated submission.
type Validated = submission.Validated

// ParseForm parses a raw form document (JSON or YAML) into a Form.
func ParseForm(data []byte) (Form, error) {
	return formdoc.Parse(data)
}

// LoadForm fetches the document identified by src and parses it. It is the
// simplest entry point for callers that just want a ready schema.
func LoadForm(ctx context.Context, src formdoc.Source, options ...formdoc.LoaderOption) (Form, error) {
	return formdoc.NewLoader(options...).LoadForm(ctx, src)
}

// Validate checks values against schema and returns the frozen submission.
func Validate(schema *form.Schema, values map[string]string, options ...submission.Option) (Validated, error) {
	return submission.New(options...).Validate(schema, values)
}

// Collect loads the form at src and walks its fields interactively on the
// terminal, returning the validated submission.
func Collect(ctx context.Context, src formdoc.Source, options ...intake.Option) (Validated, error) {
	parsed, err := LoadForm(ctx, src)
	if err != nil {
		return Validated{}, err
	}
	return intake.New(options...).Collect(ctx, parsed.Schema)
}
