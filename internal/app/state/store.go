// Package state holds the board's project list and notifies subscribers when
// it changes.
//
// A Store is constructed once at startup and passed to whatever needs it:
//
//	store := state.New(logger)
//	store.Subscribe(activeView)
//	store.Add(ctx, p) // activeView.ProjectsChanged(ctx, [..., p])
package state

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/platform/logging"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// Compile-time interface check.
var _ ports.ProjectStore = (*Store)(nil)

// Store is an append-only, in-memory project list with ordered, synchronous
// change notification. It is safe for concurrent use.
//
// Deliveries are serialized: a subscriber sees one snapshot per Add, in the
// order the adds happened, and every subscriber registered before an Add sees
// that Add's snapshot before the next Add starts notifying.
type Store struct {
	deliver sync.Mutex // serializes append+notify

	mu          sync.RWMutex
	projects    []project.Project
	subscribers []ports.Subscriber

	logger *slog.Logger
}

// New creates an empty Store. A nil logger discards output.
func New(logger *slog.Logger) *Store {
	return &Store{logger: logging.OrDiscard(logger)}
}

// Add appends p to the list and then calls every subscriber, in registration
// order, with its own copy of the full list. Add performs no validation and
// never fails.
func (s *Store) Add(ctx context.Context, p project.Project) {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	s.mu.Lock()
	s.projects = append(s.projects, p)
	projects := s.projects
	subscribers := make([]ports.Subscriber, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "project added",
		slog.Int("count", len(projects)),
		slog.Int("subscribers", len(subscribers)),
	)

	for _, sub := range subscribers {
		sub.ProjectsChanged(ctx, project.Clone(projects))
	}
}

// Subscribe registers sub for every future Add. It does not replay projects
// that were added before the call. A nil subscriber is ignored.
func (s *Store) Subscribe(sub ports.Subscriber) {
	if sub == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

// Projects returns a copy of the list in insertion order.
func (s *Store) Projects() []project.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return project.Clone(s.projects)
}
