package project_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/domain/validation"
)

func validForm() project.Form {
	return project.Form{
		Title:       "Launch site",
		Description: "Ship the marketing site",
		People:      "3",
	}
}

func TestForm_Parse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*project.Form)
		rules     project.Rules
		wantErr   bool
		wantField string
	}{
		{
			name:   "valid form passes",
			modify: func(_ *project.Form) {},
			rules:  project.DefaultRules(),
		},
		{
			name:      "empty title fails",
			modify:    func(f *project.Form) { f.Title = "" },
			rules:     project.DefaultRules(),
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "whitespace description fails",
			modify:    func(f *project.Form) { f.Description = " \t\n" },
			rules:     project.DefaultRules(),
			wantErr:   true,
			wantField: "description",
		},
		{
			name:      "empty people fails",
			modify:    func(f *project.Form) { f.People = "" },
			rules:     project.DefaultRules(),
			wantErr:   true,
			wantField: "people",
		},
		{
			name:      "non numeric people fails",
			modify:    func(f *project.Form) { f.People = "three" },
			rules:     project.DefaultRules(),
			wantErr:   true,
			wantField: "people",
		},
		{
			name:      "people above max fails",
			modify:    func(f *project.Form) { f.People = "9" },
			rules:     project.DefaultRules(),
			wantErr:   true,
			wantField: "people",
		},
		{
			name:   "people equal to max passes",
			modify: func(f *project.Form) { f.People = "8" },
			rules:  project.DefaultRules(),
		},
		{
			name:   "zero people passes without a minimum",
			modify: func(f *project.Form) { f.People = "0" },
			rules:  project.DefaultRules(),
		},
		{
			name:      "zero people fails with a minimum",
			modify:    func(f *project.Form) { f.People = "0" },
			rules:     project.Rules{MinPeople: validation.Bound(1), MaxPeople: 8},
			wantErr:   true,
			wantField: "people",
		},
		{
			name:   "padded people is trimmed",
			modify: func(f *project.Form) { f.People = " 4 " },
			rules:  project.DefaultRules(),
		},
		{
			name:      "title above configured max length fails",
			modify:    func(f *project.Form) { f.Title = "A very long project title" },
			rules:     project.Rules{Title: project.FieldLimits{MaxLength: 10}, MaxPeople: 8},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "description below configured min length fails",
			modify:    func(f *project.Form) { f.Description = "tiny" },
			rules:     project.Rules{Description: project.FieldLimits{MinLength: 5}, MaxPeople: 8},
			wantErr:   true,
			wantField: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := validForm()
			tt.modify(&f)
			p, err := f.Parse(tt.rules)

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Parse() error = %v, want nil", err)
				}
				if p.Title != f.Title || p.Description != f.Description {
					t.Errorf("Parse() = %+v, want title/description copied from form", p)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Parse() error = %v, want *domain.ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields = %v, want key %q", verr.Fields, tt.wantField)
			}
		})
	}
}

func TestForm_Parse_PeopleValue(t *testing.T) {
	t.Parallel()

	p, err := project.Form{Title: "t", Description: "d", People: "5"}.Parse(project.DefaultRules())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.People != 5 {
		t.Errorf("People = %d, want 5", p.People)
	}
}

func TestForm_Parse_AllFieldsReported(t *testing.T) {
	t.Parallel()

	_, err := project.Form{}.Parse(project.DefaultRules())
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Parse() error = %v, want ErrValidation", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if len(verr.Fields) != 3 {
		t.Errorf("Fields has %d entries, want 3: %v", len(verr.Fields), verr.Fields)
	}
}
