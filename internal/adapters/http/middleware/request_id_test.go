package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/projectboard/internal/platform/httpclient"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		wantID   string
	}{
		{name: "reuses incoming header", incoming: "incoming-123", wantID: "incoming-123"},
		{name: "generates when absent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID, outboundID string
			handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				gotID = middleware.RequestIDFromContext(r.Context())
				outboundID = httpclient.RequestIDFromContext(r.Context())
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", http.NoBody)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}
			handler.ServeHTTP(rec, req)

			if tt.wantID != "" && gotID != tt.wantID {
				t.Errorf("RequestIDFromContext = %q, want %q", gotID, tt.wantID)
			}
			if tt.wantID == "" {
				parsed, err := uuid.Parse(gotID)
				if err != nil {
					t.Fatalf("generated ID %q is not a UUID: %v", gotID, err)
				}
				if parsed.Version() != 4 {
					t.Errorf("UUID version = %d, want 4", parsed.Version())
				}
			}
			if outboundID != gotID {
				t.Errorf("outbound request ID = %q, want %q", outboundID, gotID)
			}
			if respID := rec.Header().Get("X-Request-ID"); respID != gotID {
				t.Errorf("response X-Request-ID = %q, want %q", respID, gotID)
			}
		})
	}
}

func TestRequestID_UniqueAcrossRequests(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ids[middleware.RequestIDFromContext(r.Context())] = true
	}))

	for range 50 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	}

	if len(ids) != 50 {
		t.Errorf("unique IDs = %d, want 50", len(ids))
	}
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty", id)
	}
}
