// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// ProjectHandler serves project submission and listing.
type ProjectHandler struct {
	svc ports.ProjectService
}

// NewProjectHandler creates a new ProjectHandler with the given service port.
func NewProjectHandler(svc ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// SubmitProject handles POST /api/v1/projects. A rejected form answers 400
// with one error entry per failing field.
func (h *ProjectHandler) SubmitProject(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitProjectRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	p, err := h.svc.SubmitProject(r.Context(), req.ToForm())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToProjectResponse(p))
}

// ImportProjects handles POST /api/v1/projects/import. Either every item is
// stored or none is.
func (h *ProjectHandler) ImportProjects(w http.ResponseWriter, r *http.Request) {
	var req dto.ImportProjectsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	projects, err := h.svc.ImportProjects(r.Context(), req.ToForms())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToProjectListResponse(projects))
}

// ListProjects handles GET /api/v1/projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectListResponse(projects))
}
