package project

import (
	"fmt"
	"strings"
)

// ListKind names one of the board's two project lists.
type ListKind string

// List kinds rendered by the board.
const (
	ListActive   ListKind = "active"
	ListFinished ListKind = "finished"
)

// ListKinds returns every list kind in render order.
func ListKinds() []ListKind {
	return []ListKind{ListActive, ListFinished}
}

// IsValid reports whether k is a known list kind.
func (k ListKind) IsValid() bool {
	switch k {
	case ListActive, ListFinished:
		return true
	default:
		return false
	}
}

// String returns the kind's string value.
func (k ListKind) String() string {
	return string(k)
}

// Heading returns the list's title, e.g. "ACTIVE PROJECTS".
func (k ListKind) Heading() string {
	return strings.ToUpper(string(k)) + " PROJECTS"
}

// ElementID returns the identifier of the list element, e.g. "active-projects-list".
func (k ListKind) ElementID() string {
	return fmt.Sprintf("%s-projects-list", k)
}
