package ports

import (
	"context"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// ProjectService defines the service port for project submission.
// Implemented by the application layer; called by inbound adapters.
type ProjectService interface {
	// SubmitProject validates a raw form and, if every field passes, stores
	// the resulting project. Returns domain.ErrValidation (as a
	// *domain.ValidationError) when any field fails; the store is untouched.
	SubmitProject(ctx context.Context, form project.Form) (*project.Project, error)

	// ImportProjects validates every form and stores them in input order only
	// if all of them pass. On failure nothing is stored and the returned
	// *domain.ValidationError keys failures as "items[i].field".
	ImportProjects(ctx context.Context, forms []project.Form) ([]project.Project, error)

	// ListProjects returns every stored project in insertion order.
	ListProjects(ctx context.Context) ([]project.Project, error)
}

// BoardService exposes the rendered list views.
type BoardService interface {
	// List returns the projects currently assigned to the list of the given kind.
	// Returns domain.ErrNotFound if the kind is unknown.
	List(ctx context.Context, kind project.ListKind) (*ListSnapshot, error)
}

// ListSnapshot is the rendered state of one list view.
type ListSnapshot struct {
	Kind      project.ListKind
	Heading   string
	ElementID string
	Projects  []project.Project
}
