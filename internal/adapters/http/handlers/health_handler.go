package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	checks ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by checks.
func NewHealthHandler(checks ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: dto.HealthAlive})
}

// Readiness handles GET /health/ready. Any failing check turns the answer
// into a 503; an empty registry is ready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, ready := dto.ToReadinessResponse(h.checks.CheckAll(r.Context()))
	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}
