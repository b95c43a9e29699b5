// Package validation checks a single field value against optional constraints.
//
// A constraint is either a TextConstraint or a NumericConstraint. Bounds are
// pointers so that an unset bound is skipped rather than compared against
// zero:
//
//	ok := validation.Validate(validation.TextConstraint{
//	    Value:     title,
//	    Required:  true,
//	    MaxLength: validation.Bound(40),
//	})
//
// All checks are combined with logical AND. Validate has no side effects.
package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Constraint is the closed set of field constraints understood by Validate.
// The unexported method keeps the set limited to the types in this package.
type Constraint interface {
	valid() bool
}

// TextConstraint describes the rules for a textual field. Length bounds
// compare against the trimmed value, counted in runes.
type TextConstraint struct {
	Value     string
	Required  bool
	MinLength *int
	MaxLength *int
}

// NumericConstraint describes the rules for an integer field. Min and Max
// compare against the raw value.
type NumericConstraint struct {
	Value    int
	Required bool
	Min      *int
	Max      *int
}

// Bound returns a pointer to v for use as an optional constraint bound.
func Bound(v int) *int {
	return &v
}

// Validate reports whether the value satisfies every constraint that is set.
func Validate(c Constraint) bool {
	if c == nil {
		return true
	}
	return c.valid()
}

func (c TextConstraint) valid() bool {
	trimmed := strings.TrimSpace(c.Value)
	n := utf8.RuneCountInString(trimmed)

	ok := true
	if c.Required {
		ok = ok && n != 0
	}
	if c.MinLength != nil {
		ok = ok && n >= *c.MinLength
	}
	if c.MaxLength != nil {
		ok = ok && n <= *c.MaxLength
	}
	return ok
}

func (c NumericConstraint) valid() bool {
	ok := true
	// The presence check runs on the decimal string form, so 0 is present.
	if c.Required {
		ok = ok && strings.TrimSpace(strconv.Itoa(c.Value)) != ""
	}
	if c.Min != nil {
		ok = ok && c.Value >= *c.Min
	}
	if c.Max != nil {
		ok = ok && c.Value <= *c.Max
	}
	return ok
}
