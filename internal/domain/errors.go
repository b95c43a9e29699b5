package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinels. Wrap them with fmt.Errorf("...: %w") and test with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("unavailable")
)

// InvalidInputMessage is what a user sees when a submission is rejected.
const InvalidInputMessage = "Invalid input! Please try again."

// ValidationError names every rejected form field with the reason it failed.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// Error reads "validation error: people: ...; title: ..." with fields sorted.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
