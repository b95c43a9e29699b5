package dto_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

func TestToProjectListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToProjectListResponse([]project.Project{
		{Title: "A", Description: "a", People: 1},
		{Title: "B", Description: "b", People: 2},
	})

	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
	if got.Projects[1] != (dto.ProjectResponse{Title: "B", Description: "b", People: 2}) {
		t.Errorf("Projects[1] = %+v", got.Projects[1])
	}
}

func TestToProjectListResponse_EmptyIsArray(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(dto.ToProjectListResponse(nil))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(b), `"projects":[]`) {
		t.Errorf("JSON = %s, want an empty projects array", b)
	}
}

func TestToListResponse(t *testing.T) {
	t.Parallel()

	snap := &ports.ListSnapshot{
		Kind:      project.ListFinished,
		Heading:   project.ListFinished.Heading(),
		ElementID: project.ListFinished.ElementID(),
		Projects:  []project.Project{{Title: "A", Description: "a", People: 1}},
	}

	got := dto.ToListResponse(snap)

	if got.Kind != "finished" || got.Heading != "FINISHED PROJECTS" || got.ID != "finished-projects-list" {
		t.Errorf("ToListResponse() = %+v", got)
	}
	if got.Count != 1 || got.Projects[0].Title != "A" {
		t.Errorf("Projects = %+v, want the snapshot's project", got.Projects)
	}
}
