// Package http is the board's inbound HTTP adapter: chi routes plus the
// server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/handlers"
)

// NewRouter mounts the probes and the v1 board API. middlewares wrap every
// route, outermost first.
func NewRouter(
	projects *handlers.ProjectHandler,
	lists *handlers.BoardHandler,
	probes *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Get("/health/live", probes.Liveness)
	r.Get("/health/ready", probes.Readiness)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/projects", projects.ListProjects)
		api.Post("/projects", projects.SubmitProject)
		api.Post("/projects/import", projects.ImportProjects)
		api.Get("/lists/{kind}", lists.GetList)
	})

	return r
}
