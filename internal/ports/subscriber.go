package ports

import (
	"context"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// Subscriber observes the project list. ProjectsChanged is called
// synchronously after every successful add, in registration order, with a
// snapshot of the full list that the subscriber owns and may modify.
//
// Implementations must not add projects from inside ProjectsChanged; doing so
// deadlocks the store.
type Subscriber interface {
	ProjectsChanged(ctx context.Context, projects []project.Project)
}

// SubscriberFunc adapts a plain function to the Subscriber interface.
type SubscriberFunc func(ctx context.Context, projects []project.Project)

// ProjectsChanged calls f(ctx, projects).
func (f SubscriberFunc) ProjectsChanged(ctx context.Context, projects []project.Project) {
	f(ctx, projects)
}

// ProjectStore is the state container port: an append-only project list that
// notifies subscribers on every add.
type ProjectStore interface {
	// Add appends p and notifies every subscriber. It performs no validation.
	Add(ctx context.Context, p project.Project)

	// Subscribe registers s for all future adds. It is not retroactive.
	Subscribe(s Subscriber)

	// Projects returns a copy of the current list in insertion order.
	Projects() []project.Project
}
