package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// MaxImportItems bounds a single import request.
const MaxImportItems = 100

// FieldValue is a form field as the client typed it. It accepts a JSON string
// or a JSON number, so {"people": 3} and {"people": "3"} both reach the
// validator as "3".
type FieldValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FieldValue(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("form field must be a string or number: %w", err)
		}
		*v = FieldValue(n.String())
		return nil
	}
}

// SubmitProjectRequest is the body of POST /api/v1/projects.
type SubmitProjectRequest struct {
	Title       FieldValue `json:"title"`
	Description FieldValue `json:"description"`
	People      FieldValue `json:"people"`
}

// ToForm returns the raw form the application service validates.
func (r *SubmitProjectRequest) ToForm() project.Form {
	return project.Form{
		Title:       string(r.Title),
		Description: string(r.Description),
		People:      string(r.People),
	}
}

// ImportProjectsRequest is the body of POST /api/v1/projects/import.
type ImportProjectsRequest struct {
	Items []SubmitProjectRequest `json:"items"`
}

// Validate checks the batch shape. Per-item rules are applied by the service.
func (r *ImportProjectsRequest) Validate() error {
	switch {
	case len(r.Items) == 0:
		return &domain.ValidationError{Fields: map[string]string{"items": "must not be empty"}}
	case len(r.Items) > MaxImportItems:
		return &domain.ValidationError{Fields: map[string]string{
			"items": "must contain at most " + strconv.Itoa(MaxImportItems) + " entries",
		}}
	}
	return nil
}

// ToForms converts every item.
func (r *ImportProjectsRequest) ToForms() []project.Form {
	forms := make([]project.Form, len(r.Items))
	for i := range r.Items {
		forms[i] = r.Items[i].ToForm()
	}
	return forms
}
