package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

func TestSubmitProjectRequest_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    project.Form
		wantErr bool
	}{
		{
			name: "people as number",
			body: `{"title":"Launch","description":"Ship it","people":3}`,
			want: project.Form{Title: "Launch", Description: "Ship it", People: "3"},
		},
		{
			name: "people as string",
			body: `{"title":"Launch","description":"Ship it","people":" 3 "}`,
			want: project.Form{Title: "Launch", Description: "Ship it", People: " 3 "},
		},
		{
			name: "fractional people passes through for the validator",
			body: `{"title":"Launch","description":"Ship it","people":2.5}`,
			want: project.Form{Title: "Launch", Description: "Ship it", People: "2.5"},
		},
		{
			name: "missing and null fields are empty",
			body: `{"title":null}`,
			want: project.Form{},
		},
		{
			name:    "boolean people rejected",
			body:    `{"people":true}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req dto.SubmitProjectRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := req.ToForm(); got != tt.want {
				t.Errorf("ToForm() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestImportProjectsRequest_Validate(t *testing.T) {
	t.Parallel()

	tooMany := dto.ImportProjectsRequest{Items: make([]dto.SubmitProjectRequest, dto.MaxImportItems+1)}

	tests := []struct {
		name    string
		req     dto.ImportProjectsRequest
		wantErr bool
	}{
		{"empty", dto.ImportProjectsRequest{}, true},
		{"too many", tooMany, true},
		{"one item", dto.ImportProjectsRequest{Items: []dto.SubmitProjectRequest{{Title: "A"}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Validate() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestImportProjectsRequest_ToForms(t *testing.T) {
	t.Parallel()

	req := dto.ImportProjectsRequest{Items: []dto.SubmitProjectRequest{
		{Title: "A", Description: "a", People: "1"},
		{Title: "B", Description: "b", People: "2"},
	}}

	forms := req.ToForms()
	if len(forms) != 2 || forms[0].Title != "A" || forms[1].People != "2" {
		t.Errorf("ToForms() = %+v", forms)
	}
}
