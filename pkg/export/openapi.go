package export

import (
	"errors"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-issueform/pkg/form"
)

// Option configures an export run.
type Option func(*settings)

type settings struct {
	maxValueLength int
}

// WithMaxValueLength stamps a maxLength constraint on every string property.
// It should mirror the limit configured on the submission validator so the
// published contract and the runtime checks agree. Zero disables the
// constraint.
func WithMaxValueLength(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxValueLength = n
		}
	}
}

// SubmissionSchema builds the openapi3 object schema for a submission payload
// against s. Every interactive field becomes a string property keyed by its
// field id, with the label and description carried over; required fields are
// listed in schema order.
func SubmissionSchema(s *form.Schema, options ...Option) (*openapi3.Schema, error) {
	if s == nil {
		return nil, errors.New("export: schema is nil")
	}

	var cfg settings
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	object := openapi3.NewObjectSchema()
	object.Title = s.ID()

	var required []string
	for _, field := range s.Interactive() {
		prop := openapi3.NewStringSchema()
		prop.Title = field.Label
		prop.Description = field.Description
		if cfg.maxValueLength > 0 {
			prop = prop.WithMaxLength(int64(cfg.maxValueLength))
		}
		object = object.WithProperty(field.ID, prop)
		if field.Required {
			required = append(required, field.ID)
		}
	}
	object.Required = required

	return object, nil
}

// SubmissionRequestBody wraps the submission schema in a JSON request body,
// ready to attach to an openapi3.Operation.
func SubmissionRequestBody(s *form.Schema, options ...Option) (*openapi3.RequestBody, error) {
	schema, err := SubmissionSchema(s, options...)
	if err != nil {
		return nil, err
	}

	body := openapi3.NewRequestBody().
		WithContent(openapi3.NewContentWithJSONSchema(schema)).
		WithRequired(true)

	return body, nil
}
