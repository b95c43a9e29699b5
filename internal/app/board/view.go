// Package board renders the project list into the board's list views.
// Each ListView subscribes to the store and keeps the latest snapshot it was
// handed; Board groups the views and serves them by kind.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/platform/logging"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Subscriber   = (*ListView)(nil)
	_ ports.BoardService = (*Board)(nil)
)

// ListView holds the projects assigned to one list. It replaces its
// assignment with every snapshot it receives, so a view never shows a
// project twice.
type ListView struct {
	kind project.ListKind

	mu       sync.RWMutex
	assigned []project.Project
}

// NewListView creates an empty view for the given list kind.
func NewListView(kind project.ListKind) *ListView {
	return &ListView{kind: kind, assigned: []project.Project{}}
}

// ProjectsChanged implements ports.Subscriber.
func (v *ListView) ProjectsChanged(_ context.Context, projects []project.Project) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.assigned = projects
}

// Render returns the view's current state: the list heading, its element ID
// and a copy of the assigned projects.
func (v *ListView) Render() *ports.ListSnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return &ports.ListSnapshot{
		Kind:      v.kind,
		Heading:   v.kind.Heading(),
		ElementID: v.kind.ElementID(),
		Projects:  project.Clone(v.assigned),
	}
}

// Board owns one ListView per list kind.
type Board struct {
	views  map[project.ListKind]*ListView
	logger *slog.Logger
}

// New creates a Board with a view for every kind in project.ListKinds and
// subscribes each view to store, in render order.
func New(store ports.ProjectStore, logger *slog.Logger) *Board {
	b := &Board{
		views:  make(map[project.ListKind]*ListView),
		logger: logging.OrDiscard(logger),
	}
	for _, kind := range project.ListKinds() {
		v := NewListView(kind)
		b.views[kind] = v
		store.Subscribe(v)
	}
	return b
}

// List implements ports.BoardService.
func (b *Board) List(ctx context.Context, kind project.ListKind) (*ports.ListSnapshot, error) {
	v, ok := b.views[kind]
	if !ok {
		b.logger.WarnContext(ctx, "unknown list requested", slog.String("kind", kind.String()))
		return nil, fmt.Errorf("list %q: %w", kind, domain.ErrNotFound)
	}
	return v.Render(), nil
}
