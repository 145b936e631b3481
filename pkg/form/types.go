package form

// FieldKind is the enumeration of supported field kinds.
type FieldKind string

const (
	// KindShortText is a single-line text input.
	KindShortText FieldKind = "short-text"
	// KindLongText is a multi-line text input.
	KindLongText FieldKind = "long-text"
	// KindMarkdownNote is display-only copy shown between inputs. Notes carry
	// no submitted value and are never required.
	KindMarkdownNote FieldKind = "markdown-note"
)

// Interactive reports whether fields of this kind accept a submitted value.
func (k FieldKind) Interactive() bool {
	switch k {
	case KindShortText, KindLongText:
		return true
	default:
		return false
	}
}

// Valid reports whether the kind is part of the supported enumeration.
func (k FieldKind) Valid() bool {
	switch k {
	case KindShortText, KindLongText, KindMarkdownNote:
		return true
	default:
		return false
	}
}

// FieldDefinition models an individual slot in a report form. For markdown
// notes the display copy lives in Description and Label stays empty.
type FieldDefinition struct {
	ID          string    `json:"id"`
	Kind        FieldKind `json:"kind"`
	Label       string    `json:"label,omitempty"`
	Description string    `json:"description,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Required    bool      `json:"required"`
	// RenderMode is an opaque hint for external renderers (for example
	// "shell" for shell-formatted code blocks). It never affects validation.
	RenderMode string `json:"renderMode,omitempty"`
}

// Interactive reports whether the field accepts a submitted value.
func (f FieldDefinition) Interactive() bool {
	return f.Kind.Interactive()
}
