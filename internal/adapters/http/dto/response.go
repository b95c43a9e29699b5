// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ListResponse is one rendered board list.
type ListResponse struct {
	Kind     string            `json:"kind"`
	Heading  string            `json:"heading"`
	ID       string            `json:"id"`
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain project.
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		Title:       p.Title,
		Description: p.Description,
		People:      p.People,
	}
}

// ToProjectListResponse converts projects, keeping their order. The projects
// field is never null.
func ToProjectListResponse(projects []project.Project) ProjectListResponse {
	items := toProjectResponses(projects)
	return ProjectListResponse{Projects: items, Count: len(items)}
}

// ToListResponse converts a list snapshot.
func ToListResponse(s *ports.ListSnapshot) ListResponse {
	items := toProjectResponses(s.Projects)
	return ListResponse{
		Kind:     s.Kind.String(),
		Heading:  s.Heading,
		ID:       s.ElementID,
		Projects: items,
		Count:    len(items),
	}
}

func toProjectResponses(projects []project.Project) []ProjectResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
	}
	return items
}
