// Package main is the terminal front end of the project board. It loads the
// same configuration as the server, wires the in-memory store, the list views
// and the project service, and runs the bubbletea form until the user quits.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/projectboard/internal/adapters/clients/publisher"
	"github.com/jsamuelsen11/projectboard/internal/adapters/tui"
	"github.com/jsamuelsen11/projectboard/internal/app"
	"github.com/jsamuelsen11/projectboard/internal/app/board"
	"github.com/jsamuelsen11/projectboard/internal/app/state"
	"github.com/jsamuelsen11/projectboard/internal/platform/config"
	"github.com/jsamuelsen11/projectboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/projectboard/internal/platform/logging"
)

const publisherCloseTimeout = 5 * time.Second

var version = "dev"

type options struct {
	profile   string
	configDir string
	logFile   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Add projects to the board from the terminal",
		Long: `board opens a form with title, description and people fields.
Enter adds the project; valid projects appear in both the active and the
finished list below the form. Invalid input shows a banner until a key is pressed.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = "local"
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.profile, "profile", profile, "config profile (local, dev, prod)")
	flags.StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and the profile files")
	flags.StringVar(&opts.logFile, "log-file", "", "append logs to this file (logs are discarded when empty)")

	return cmd
}

func run(ctx context.Context, opts *options) error {
	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logOut, closeLog, err := openLog(opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)

	store := state.New(logger)
	views := board.New(store, logger)
	svc := app.NewProjectService(store, cfg.Board.Rules(), logger,
		app.WithImportWorkers(cfg.Board.ImportWorkers),
	)

	if cfg.Publisher.Enabled {
		client := httpclient.New(&cfg.Client, publisher.ServiceName, nil, logger)
		pub := publisher.New(client, cfg.Publisher.Board, cfg.Publisher.QueueSize, logger)
		store.Subscribe(pub)
		pub.Start(ctx)

		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), publisherCloseTimeout)
			defer cancel()
			if err := pub.Close(closeCtx); err != nil {
				logger.Error("closing publisher", logging.Err(err))
			}
		}()
	}

	logger.Info("starting board", slog.String("profile", opts.profile))

	prog := tea.NewProgram(tui.New(svc, views), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}

func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
