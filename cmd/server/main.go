// Package main is the entry point for the board API. It wires the project
// store, the list views and the optional board publisher using samber/do v2,
// starts the HTTP server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/projectboard/internal/adapters/http"
	"github.com/jsamuelsen11/projectboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/projectboard/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/projectboard/internal/adapters/clients/publisher"
	"github.com/jsamuelsen11/projectboard/internal/app"
	"github.com/jsamuelsen11/projectboard/internal/app/board"
	"github.com/jsamuelsen11/projectboard/internal/app/state"
	"github.com/jsamuelsen11/projectboard/internal/platform/config"
	"github.com/jsamuelsen11/projectboard/internal/platform/health"
	"github.com/jsamuelsen11/projectboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/projectboard/internal/platform/logging"
	"github.com/jsamuelsen11/projectboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

const (
	serverShutdownTimeout    = 15 * time.Second
	publisherShutdownTimeout = 5 * time.Second
	otelShutdownTimeout      = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE must name a config profile (local, dev or prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, tel.Metrics)
	registerDependencies(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	pub := wireSubscribers(ctx, injector, cfg, tel.Metrics, logger)

	if err := server.Listen(); err != nil {
		return fmt.Errorf("binding %s:%d: %w", cfg.Server.Host, cfg.Server.Port, err)
	}
	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdown(server, serverErr, pub, tel, logger)
	return nil
}

// wireSubscribers attaches the store's subscribers after the graph is
// resolved, so delivery order is fixed: list views (registered by the board),
// then metrics, then the publisher. Returns the publisher when enabled.
func wireSubscribers(
	ctx context.Context,
	injector do.Injector,
	cfg *config.Config,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *publisher.Publisher {
	store := do.MustInvoke[*state.Store](injector)
	if metrics != nil {
		store.Subscribe(metrics)
	}
	if !cfg.Publisher.Enabled {
		return nil
	}

	pub := do.MustInvoke[*publisher.Publisher](injector)
	store.Subscribe(pub)
	pub.Start(ctx)
	do.MustInvoke[ports.HealthRegistry](injector).Register(pub)

	logger.Info("board publisher enabled",
		slog.String("board", cfg.Publisher.Board),
		slog.String("base_url", cfg.Client.BaseURL),
	)
	return pub
}

// shutdown drains HTTP first so no submission lands after the publisher's
// final push, then flushes telemetry. Each stage gets its own deadline.
func shutdown(
	server *adapthttp.Server,
	serverErr <-chan error,
	pub *publisher.Publisher,
	tel *telemetry.Providers,
	logger *slog.Logger,
) {
	stage := func(timeout time.Duration, name string, fn func(context.Context) error) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			logger.Error(name+" shutdown failed", logging.Err(err))
		}
	}

	stage(serverShutdownTimeout, "server", server.Shutdown)
	<-serverErr

	if pub != nil {
		stage(publisherShutdownTimeout, "publisher", pub.Close)
		stats := pub.Stats()
		logger.Info("board publisher stopped",
			slog.Int64("published", stats.Published),
			slog.Int64("failed", stats.Failed),
			slog.Int64("dropped", stats.Dropped),
		)
	}

	stage(otelShutdownTimeout, "telemetry", tel.Shutdown)
	logger.Info("shutdown complete")
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*state.Store, error) {
		return state.New(logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*board.Board, error) {
		store := do.MustInvoke[*state.Store](i)
		return board.New(store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, publisher.ServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*publisher.Publisher, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return publisher.New(client, cfg.Publisher.Board, cfg.Publisher.QueueSize, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		store := do.MustInvoke[*state.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewProjectService(store, cfg.Board.Rules(), logger,
			app.WithMetrics(metrics),
			app.WithImportWorkers(cfg.Board.ImportWorkers),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		return do.MustInvoke[*board.Board](i), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		svc := do.MustInvoke[ports.ProjectService](i)
		return handlers.NewProjectHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.BoardHandler, error) {
		svc := do.MustInvoke[ports.BoardService](i)
		return handlers.NewBoardHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		projH := do.MustInvoke[*handlers.ProjectHandler](i)
		boardH := do.MustInvoke[*handlers.BoardHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(projH, boardH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
