// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/projectboard/internal/app/fanout"
	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/platform/logging"
	"github.com/jsamuelsen11/projectboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

const defaultImportWorkers = 4

// Option configures a ProjectService.
type Option func(*ProjectService)

// WithMetrics records submission outcomes on the given instruments.
// A nil value disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *ProjectService) {
		s.metrics = m
	}
}

// WithImportWorkers bounds how many forms ImportProjects validates at once.
func WithImportWorkers(n int) Option {
	return func(s *ProjectService) {
		if n > 0 {
			s.importWorkers = n
		}
	}
}

// ProjectService implements ports.ProjectService. It validates raw forms
// against the configured rules and hands accepted projects to the store; the
// store takes care of notifying the list views.
type ProjectService struct {
	store         ports.ProjectStore
	rules         project.Rules
	metrics       *telemetry.Metrics
	importWorkers int
	logger        *slog.Logger
}

// NewProjectService creates a ProjectService that writes to store and
// validates with rules. A nil logger discards output.
func NewProjectService(store ports.ProjectStore, rules project.Rules, logger *slog.Logger, opts ...Option) *ProjectService {
	s := &ProjectService{
		store:         store,
		rules:         rules,
		importWorkers: defaultImportWorkers,
		logger:        logging.OrDiscard(logger),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitProject validates form and stores the resulting project.
func (s *ProjectService) SubmitProject(ctx context.Context, form project.Form) (*project.Project, error) {
	p, err := form.Parse(s.rules)
	if err != nil {
		s.logger.WarnContext(ctx, "rejected project submission",
			logging.Operation("SubmitProject"),
			logging.Err(err),
		)
		s.metrics.RecordSubmission(ctx, telemetry.ResultInvalid)
		return nil, err
	}

	s.logger.InfoContext(ctx, "submitting project", slog.Any("project", p))

	s.store.Add(ctx, p)
	s.metrics.RecordSubmission(ctx, telemetry.ResultAccepted)

	return &p, nil
}

// ImportProjects validates every form concurrently and stores them in input
// order only when all of them pass.
func (s *ProjectService) ImportProjects(ctx context.Context, forms []project.Form) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "importing projects", slog.Int("count", len(forms)))

	if len(forms) == 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{"items": "must not be empty"}}
	}

	results := fanout.Run(ctx, s.importWorkers, forms, func(_ context.Context, f project.Form) (project.Project, error) {
		return f.Parse(s.rules)
	})

	fields := make(map[string]string)
	for i, r := range results {
		if r.Err == nil {
			continue
		}
		var verr *domain.ValidationError
		if errors.As(r.Err, &verr) {
			for field, msg := range verr.Fields {
				fields[fmt.Sprintf("items[%d].%s", i, field)] = msg
			}
			continue
		}
		// Only context cancellation reaches here.
		s.logger.ErrorContext(ctx, "import aborted",
			logging.Operation("ImportProjects"),
			slog.Int("index", i),
			logging.Err(r.Err),
		)
		return nil, fmt.Errorf("validating item %d: %w", i, r.Err)
	}

	if len(fields) > 0 {
		err := &domain.ValidationError{Fields: fields}
		s.logger.WarnContext(ctx, "rejected project import",
			logging.Operation("ImportProjects"),
			logging.Err(err),
		)
		s.metrics.RecordSubmission(ctx, telemetry.ResultInvalid)
		return nil, err
	}

	projects := make([]project.Project, len(results))
	for i, r := range results {
		projects[i] = r.Value
		s.store.Add(ctx, r.Value)
		s.metrics.RecordSubmission(ctx, telemetry.ResultAccepted)
	}

	return projects, nil
}

// ListProjects returns every stored project in insertion order.
func (s *ProjectService) ListProjects(ctx context.Context) ([]project.Project, error) {
	s.logger.DebugContext(ctx, "listing projects")
	return s.store.Projects(), nil
}
