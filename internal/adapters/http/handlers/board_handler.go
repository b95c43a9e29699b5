package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// BoardHandler serves the rendered list views.
type BoardHandler struct {
	svc ports.BoardService
}

// NewBoardHandler creates a BoardHandler.
func NewBoardHandler(svc ports.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// GetList handles GET /api/v1/lists/{kind}. Unknown kinds answer 404.
func (h *BoardHandler) GetList(w http.ResponseWriter, r *http.Request) {
	kind := project.ListKind(chi.URLParam(r, "kind"))

	snap, err := h.svc.List(r.Context(), kind)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(snap))
}
