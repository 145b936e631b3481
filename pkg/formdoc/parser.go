package formdoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-issueform/pkg/form"
)

// Form is a parsed report form: the loadable schema plus the pass-through
// metadata an external issue tracker consumes.
type Form struct {
	Name        string
	Description string
	Labels      []string
	// Extras preserves every top-level key except the field body, verbatim.
	// The engine never interprets these; they exist for the external
	// tracker collaborator.
	Extras map[string]any
	Schema *form.Schema
}

const bodyKey = "body"

// block types used by the source document format
const (
	blockTypeInput    = "input"
	blockTypeTextarea = "textarea"
	blockTypeMarkdown = "markdown"
)

type documentFile struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Labels      []string     `json:"labels" yaml:"labels"`
	Body        []fieldBlock `json:"body" yaml:"body"`
}

type fieldBlock struct {
	Type        string           `json:"type" yaml:"type"`
	ID          string           `json:"id" yaml:"id"`
	Attributes  blockAttributes  `json:"attributes" yaml:"attributes"`
	Validations blockValidations `json:"validations" yaml:"validations"`
}

type blockAttributes struct {
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	Value       string `json:"value" yaml:"value"`
	Render      string `json:"render" yaml:"render"`
}

type blockValidations struct {
	Required bool `json:"required" yaml:"required"`
}

// Parse decodes a form document and loads its field body into a schema. The
// schema id derives from the document name ("🐛 Bug Report" -> "bug-report").
func Parse(data []byte) (Form, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Form{}, errors.New("formdoc: document is empty")
	}

	doc, raw, err := decodeDocument(data)
	if err != nil {
		return Form{}, err
	}
	if len(doc.Body) == 0 {
		return Form{}, errors.New("formdoc: document has no body blocks")
	}

	defs := make([]form.FieldDefinition, 0, len(doc.Body))
	notes := 0
	for i, block := range doc.Body {
		def, isNote, err := fieldFromBlock(block)
		if err != nil {
			return Form{}, fmt.Errorf("formdoc: body[%d]: %w", i, err)
		}
		if isNote {
			notes++
			if def.ID == "" {
				def.ID = fmt.Sprintf("_note-%d", notes)
			}
		}
		defs = append(defs, def)
	}

	schema, err := form.Load(slug(doc.Name), defs)
	if err != nil {
		return Form{}, fmt.Errorf("formdoc: load schema: %w", err)
	}

	extras := make(map[string]any, len(raw))
	for key, value := range raw {
		if key == bodyKey {
			continue
		}
		extras[key] = value
	}
	if len(extras) == 0 {
		extras = nil
	}

	return Form{
		Name:        strings.TrimSpace(doc.Name),
		Description: strings.TrimSpace(doc.Description),
		Labels:      append([]string(nil), doc.Labels...),
		Extras:      extras,
		Schema:      schema,
	}, nil
}

// ParseDocument parses a loaded Document, annotating errors with its origin.
func ParseDocument(doc Document) (Form, error) {
	parsed, err := Parse(doc.Raw())
	if err != nil {
		return Form{}, fmt.Errorf("formdoc: parse %s: %w", doc.Location(), err)
	}
	return parsed, nil
}

// decodeDocument deserializes per the sniffed encoding, into both the typed
// layout and a raw map so unparsed top-level keys survive as Extras.
func decodeDocument(data []byte) (documentFile, map[string]any, error) {
	var doc documentFile
	raw := make(map[string]any)

	switch DetectEncoding(data) {
	case EncodingJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, nil, fmt.Errorf("formdoc: decode json document: %w", err)
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return documentFile{}, nil, fmt.Errorf("formdoc: decode json document: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return documentFile{}, nil, fmt.Errorf("formdoc: decode yaml document: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return documentFile{}, nil, fmt.Errorf("formdoc: decode yaml document: %w", err)
		}
	}

	return doc, raw, nil
}

func fieldFromBlock(block fieldBlock) (form.FieldDefinition, bool, error) {
	def := form.FieldDefinition{
		ID:          strings.TrimSpace(block.ID),
		Label:       sanitizeHint(block.Attributes.Label),
		Description: sanitizeHint(block.Attributes.Description),
		Placeholder: sanitizeHint(block.Attributes.Placeholder),
		Required:    block.Validations.Required,
		RenderMode:  strings.TrimSpace(block.Attributes.Render),
	}

	switch strings.ToLower(strings.TrimSpace(block.Type)) {
	case blockTypeInput:
		def.Kind = form.KindShortText
	case blockTypeTextarea:
		def.Kind = form.KindLongText
	case blockTypeMarkdown:
		def.Kind = form.KindMarkdownNote
		// note copy travels in attributes.value
		def.Description = sanitizeHint(block.Attributes.Value)
		return def, true, nil
	default:
		return form.FieldDefinition{}, false, fmt.Errorf("unsupported block type %q", block.Type)
	}

	return def, false, nil
}

// slug derives a schema identifier from a human-facing document name.
// Characters outside letters and digits collapse into single dashes.
func slug(name string) string {
	var builder strings.Builder
	builder.Grow(len(name))
	dash := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			if dash && builder.Len() > 0 {
				builder.WriteByte('-')
			}
			dash = false
			builder.WriteRune(unicode.ToLower(r))
		default:
			dash = true
		}
	}
	if builder.Len() == 0 {
		return "form"
	}
	return builder.String()
}
