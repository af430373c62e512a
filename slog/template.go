package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/autohext"
)

// Ensure LoggingTemplateService implements autohext.TemplateService.
var _ autohext.TemplateService = (*LoggingTemplateService)(nil)

// LoggingTemplateService wraps a TemplateService with logging.
type LoggingTemplateService struct {
	next   autohext.TemplateService
	logger *slog.Logger
}

// NewLoggingTemplateService creates a new LoggingTemplateService.
func NewLoggingTemplateService(next autohext.TemplateService, logger *slog.Logger) *LoggingTemplateService {
	return &LoggingTemplateService{next: next, logger: logger}
}

// CreateTemplate delegates to the wrapped service and logs the stored template.
func (s *LoggingTemplateService) CreateTemplate(ctx context.Context, tmpl *autohext.Template) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create template",
			"name", tmpl.Name,
			"id", tmpl.ID,
			"columns", tmpl.Columns,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateTemplate(ctx, tmpl)
}

// FindTemplateByID delegates to the wrapped service.
func (s *LoggingTemplateService) FindTemplateByID(ctx context.Context, id string) (tmpl *autohext.Template, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find template",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTemplateByID(ctx, id)
}

// FindTemplates delegates to the wrapped service and logs the result count.
func (s *LoggingTemplateService) FindTemplates(ctx context.Context, filter autohext.TemplateFilter) (templates []*autohext.Template, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find templates",
			"count", len(templates),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTemplates(ctx, filter)
}

// DeleteTemplate delegates to the wrapped service and logs the operation.
func (s *LoggingTemplateService) DeleteTemplate(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete template",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteTemplate(ctx, id)
}
