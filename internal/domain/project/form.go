package project

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/validation"
)

const (
	msgRequired    = "is required"
	msgWholeNumber = "must be a whole number"
)

// DefaultMaxPeople is the team size limit used when no rules are configured.
const DefaultMaxPeople = 8

// Form is a raw submission: the three field values exactly as entered.
type Form struct {
	Title       string
	Description string
	People      string
}

// FieldLimits bounds the trimmed length of a text field. Zero means unbounded.
type FieldLimits struct {
	MinLength int
	MaxLength int
}

// Rules are the constraints applied to every submission. Title and
// description are always required; the people count is always required and
// capped at MaxPeople. MinPeople is optional.
type Rules struct {
	Title       FieldLimits
	Description FieldLimits
	MinPeople   *int
	MaxPeople   int
}

// DefaultRules returns the rules used by the board when nothing is configured.
func DefaultRules() Rules {
	return Rules{MaxPeople: DefaultMaxPeople}
}

// Parse validates the form against rules and, when every field passes,
// returns the resulting Project. On failure it returns a
// *domain.ValidationError naming every failing field; nothing is partially
// accepted.
func (f Form) Parse(rules Rules) (Project, error) {
	fields := make(map[string]string)

	if msg, ok := checkText(f.Title, rules.Title); !ok {
		fields["title"] = msg
	}
	if msg, ok := checkText(f.Description, rules.Description); !ok {
		fields["description"] = msg
	}

	people, msg, ok := checkPeople(f.People, rules)
	if !ok {
		fields["people"] = msg
	}

	if len(fields) > 0 {
		return Project{}, &domain.ValidationError{Fields: fields}
	}

	return Project{
		Title:       f.Title,
		Description: f.Description,
		People:      people,
	}, nil
}

func checkText(value string, limits FieldLimits) (string, bool) {
	c := validation.TextConstraint{Value: value, Required: true}
	if limits.MinLength > 0 {
		c.MinLength = validation.Bound(limits.MinLength)
	}
	if limits.MaxLength > 0 {
		c.MaxLength = validation.Bound(limits.MaxLength)
	}

	if validation.Validate(c) {
		return "", true
	}

	switch {
	case strings.TrimSpace(value) == "":
		return msgRequired, false
	case c.MinLength != nil && c.MaxLength != nil:
		return fmt.Sprintf("must be %d-%d characters", *c.MinLength, *c.MaxLength), false
	case c.MinLength != nil:
		return fmt.Sprintf("must be at least %d characters", *c.MinLength), false
	default:
		return fmt.Sprintf("must be at most %d characters", limits.MaxLength), false
	}
}

func checkPeople(raw string, rules Rules) (int, string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, msgRequired, false
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, msgWholeNumber, false
	}

	c := validation.NumericConstraint{
		Value:    n,
		Required: true,
		Min:      rules.MinPeople,
		Max:      validation.Bound(rules.MaxPeople),
	}
	if validation.Validate(c) {
		return n, "", true
	}

	if rules.MinPeople != nil {
		return 0, fmt.Sprintf("must be between %d and %d", *rules.MinPeople, rules.MaxPeople), false
	}
	return 0, fmt.Sprintf("must be at most %d", rules.MaxPeople), false
}
