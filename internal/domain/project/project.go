// Package project defines the project record submitted through the board form,
// the raw form it is parsed from, and the two list kinds it is rendered into.
package project

import "log/slog"

// Project is a single submitted project. It is a value: once stored it is never
// mutated, and it has no identity beyond its position in the board's list.
type Project struct {
	Title       string
	Description string
	People      int
}

// LogValue groups the project's fields so a single slog attribute carries all
// of them.
func (p Project) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("title", p.Title),
		slog.String("description", p.Description),
		slog.Int("people", p.People),
	)
}

// Clone returns an independently owned copy of projects. A nil input yields an
// empty, non-nil slice so that subscribers never have to nil-check.
func Clone(projects []Project) []Project {
	out := make([]Project, len(projects))
	copy(out, projects)
	return out
}
