package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-issueform/pkg/form"
	"github.com/goliatone/go-issueform/pkg/submission"
)

const defaultMaxAttempts = 3

// Collector prompts for every field of a schema and returns the validated
// submission.
type Collector struct {
	driver         PromptDriver
	maxValueLength int
	maxAttempts    int
}

// New constructs a Collector. Without options it prompts on the real terminal
// and re-prompts each invalid field up to three times.
func New(options ...Option) *Collector {
	c := &Collector{
		driver:      newSurveyDriver(),
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Collect walks the schema fields in order, prompting for each interactive
// field and printing markdown notes, then validates the collected values.
func (c *Collector) Collect(ctx context.Context, schema *form.Schema) (submission.Validated, error) {
	if schema == nil {
		return submission.Validated{}, errors.New("intake: schema is nil")
	}

	values := make(map[string]string)
	for _, field := range schema.Fields() {
		if err := ctx.Err(); err != nil {
			return submission.Validated{}, err
		}

		if field.Kind == form.KindMarkdownNote {
			if field.Description == "" {
				continue
			}
			if err := c.driver.Info(ctx, field.Description); err != nil {
				return submission.Validated{}, err
			}
			continue
		}

		value, err := c.collectField(ctx, field)
		if err != nil {
			return submission.Validated{}, err
		}
		if value == "" && !field.Required {
			continue
		}
		values[field.ID] = value
	}

	validator := submission.New(submission.WithMaxValueLength(c.maxValueLength))
	return validator.Validate(schema, values)
}

func (c *Collector) collectField(ctx context.Context, field form.FieldDefinition) (string, error) {
	validate := c.fieldValidator(field)

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		raw, err := c.prompt(ctx, field, validate)
		if err != nil {
			return "", err
		}

		value := strings.TrimSpace(raw)
		verr := validate(value)
		if verr == nil {
			return value, nil
		}
		if err := c.driver.Info(ctx, verr.Error()); err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("%w: field %q", ErrAttemptsExhausted, field.ID)
}

func (c *Collector) prompt(ctx context.Context, field form.FieldDefinition, validate func(string) error) (string, error) {
	switch field.Kind {
	case form.KindShortText:
		return c.driver.Input(ctx, InputConfig{
			Message:     field.Label,
			Help:        field.Description,
			Placeholder: field.Placeholder,
			Validator:   validate,
		})
	case form.KindLongText:
		return c.driver.TextArea(ctx, TextAreaConfig{
			Message:   field.Label,
			Help:      field.Description,
			Validator: validate,
		})
	default:
		return "", fmt.Errorf("intake: field %q: cannot prompt for kind %q", field.ID, field.Kind)
	}
}

func (c *Collector) fieldValidator(field form.FieldDefinition) func(string) error {
	return func(value string) error {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			if field.Required {
				return fmt.Errorf("a response is required for %q", field.Label)
			}
			return nil
		}
		if c.maxValueLength > 0 && len(trimmed) > c.maxValueLength {
			return fmt.Errorf("response exceeds %d bytes", c.maxValueLength)
		}
		return nil
	}
}
