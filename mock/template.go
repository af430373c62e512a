package mock

import (
	"context"

	"github.com/fwojciec/autohext"
)

var _ autohext.TemplateService = (*TemplateService)(nil)

// TemplateService is a mock implementation of autohext.TemplateService.
type TemplateService struct {
	CreateTemplateFn   func(ctx context.Context, tmpl *autohext.Template) error
	FindTemplateByIDFn func(ctx context.Context, id string) (*autohext.Template, error)
	FindTemplatesFn    func(ctx context.Context, filter autohext.TemplateFilter) ([]*autohext.Template, error)
	DeleteTemplateFn   func(ctx context.Context, id string) error
}

func (s *TemplateService) CreateTemplate(ctx context.Context, tmpl *autohext.Template) error {
	return s.CreateTemplateFn(ctx, tmpl)
}

func (s *TemplateService) FindTemplateByID(ctx context.Context, id string) (*autohext.Template, error) {
	return s.FindTemplateByIDFn(ctx, id)
}

func (s *TemplateService) FindTemplates(ctx context.Context, filter autohext.TemplateFilter) ([]*autohext.Template, error) {
	return s.FindTemplatesFn(ctx, filter)
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, id string) error {
	return s.DeleteTemplateFn(ctx, id)
}

var _ autohext.TemplateWriter = (*TemplateWriter)(nil)

// TemplateWriter is a mock implementation of autohext.TemplateWriter.
type TemplateWriter struct {
	WriteTemplateFn func(ctx context.Context, tmpl *autohext.Template) error
}

func (w *TemplateWriter) WriteTemplate(ctx context.Context, tmpl *autohext.Template) error {
	return w.WriteTemplateFn(ctx, tmpl)
}
