package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/projectboard/internal/adapters/http"
	"github.com/jsamuelsen11/projectboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/projectboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/projectboard/internal/app"
	"github.com/jsamuelsen11/projectboard/internal/app/board"
	"github.com/jsamuelsen11/projectboard/internal/app/state"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/platform/config"
	"github.com/jsamuelsen11/projectboard/internal/platform/health"
	"github.com/jsamuelsen11/projectboard/internal/platform/logging"
)

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 9090}
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), nil)

	if got := s.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:9090")
	}
}

func TestServer_ListenResolvesPort(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1"}, http.NotFoundHandler(), logging.Discard())
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })

	if strings.HasSuffix(s.Addr(), ":0") {
		t.Errorf("Addr() = %q, want a resolved port", s.Addr())
	}
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1"}, http.NotFoundHandler(), logging.Discard())
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start() after Shutdown = %v, want nil", err)
	}
}

// startBoardServer serves the full stack on a loopback port.
func startBoardServer(t *testing.T) string {
	t.Helper()

	logger := logging.Discard()
	store := state.New(logger)
	b := board.New(store, logger)
	svc := app.NewProjectService(store, project.DefaultRules(), logger)

	router := adapthttp.NewRouter(
		handlers.NewProjectHandler(svc),
		handlers.NewBoardHandler(b),
		handlers.NewHealthHandler(health.New()),
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(logger),
		middleware.Timeout(5*time.Second),
	)

	s := adapthttp.NewServer(config.ServerConfig{
		Host:         "127.0.0.1",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}, router, logger)
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown() error = %v", err)
		}
		if err := <-errCh; err != nil {
			t.Errorf("Start() error after shutdown = %v", err)
		}
	})

	return "http://" + s.Addr()
}

func send(t *testing.T, method, url, body string) (int, []byte) {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp.StatusCode, data
}

func TestServer_SubmitRendersBothLists(t *testing.T) {
	t.Parallel()

	base := startBoardServer(t)

	status, body := send(t, http.MethodPost, base+"/api/v1/projects",
		`{"title":"Launch site","description":"Ship it","people":3}`)
	if status != http.StatusCreated {
		t.Fatalf("submit status = %d, body %s", status, body)
	}

	status, body = send(t, http.MethodPost, base+"/api/v1/projects",
		`{"title":"","description":"Ship it","people":"3"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("invalid submit status = %d, body %s", status, body)
	}

	for _, kind := range []string{"active", "finished"} {
		status, body = send(t, http.MethodGet, base+"/api/v1/lists/"+kind, "")
		if status != http.StatusOK {
			t.Fatalf("list %s status = %d", kind, status)
		}

		var list struct {
			Heading  string `json:"heading"`
			ID       string `json:"id"`
			Count    int    `json:"count"`
			Projects []struct {
				Title string `json:"title"`
			} `json:"projects"`
		}
		if err := json.Unmarshal(body, &list); err != nil {
			t.Fatalf("decoding list: %v", err)
		}

		if list.Heading != strings.ToUpper(kind)+" PROJECTS" {
			t.Errorf("heading = %q", list.Heading)
		}
		if list.ID != kind+"-projects-list" {
			t.Errorf("id = %q", list.ID)
		}
		if list.Count != 1 || len(list.Projects) != 1 || list.Projects[0].Title != "Launch site" {
			t.Errorf("list %s = %+v, want only the valid project", kind, list)
		}
	}
}

func TestServer_Liveness(t *testing.T) {
	t.Parallel()

	base := startBoardServer(t)

	if status, body := send(t, http.MethodGet, base+"/health/live", ""); status != http.StatusOK {
		t.Errorf("liveness status = %d, body %s", status, body)
	}
}
