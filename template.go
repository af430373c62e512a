package autohext

import (
	"context"
	"time"
)

// Template is a persisted Hext template built from an example record.
type Template struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Source      string    `json:"source"`
	Hext        string    `json:"hext"`
	Columns     int       `json:"columns"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the template contains invalid fields.
func (t *Template) Validate() error {
	if t.Name == "" {
		return Errorf(EINVALID, "template name required")
	}
	if t.Hext == "" {
		return Errorf(EINVALID, "template hext required")
	}
	return nil
}

// TemplateService represents a service for managing templates.
type TemplateService interface {
	// CreateTemplate stores a new template. ID, Columns, Fingerprint and
	// CreatedAt are set on the passed template.
	// Returns ECONFLICT if a template with the same name exists.
	CreateTemplate(ctx context.Context, tmpl *Template) error

	// FindTemplateByID retrieves a template by ID.
	// Returns ENOTFOUND if template does not exist.
	FindTemplateByID(ctx context.Context, id string) (*Template, error)

	// FindTemplates retrieves templates matching the filter.
	FindTemplates(ctx context.Context, filter TemplateFilter) ([]*Template, error)

	// DeleteTemplate permanently removes a template.
	// Returns ENOTFOUND if template does not exist.
	DeleteTemplate(ctx context.Context, id string) error
}

// TemplateFilter represents a filter for FindTemplates.
type TemplateFilter struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Fingerprint *string `json:"fingerprint"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// TemplateWriter writes templates to an output location.
type TemplateWriter interface {
	WriteTemplate(ctx context.Context, tmpl *Template) error
}
