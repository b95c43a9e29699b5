package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// launchSite is a project that passes the default form rules.
func launchSite() project.Project {
	return project.Project{Title: "Launch site", Description: "Ship the marketing site", People: 3}
}

// listRequest builds GET /api/v1/lists/{kind} with the chi param set, as the
// router would.
func listRequest(kind string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/lists/"+kind, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("kind", kind)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func formBody(t *testing.T, fields map[string]any) io.Reader {
	t.Helper()
	raw, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("encoding form: %v", err)
	}
	return strings.NewReader(string(raw))
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
