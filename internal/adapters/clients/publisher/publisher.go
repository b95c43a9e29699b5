// Package publisher mirrors the board to a remote service. It subscribes to
// the project store and PUTs the full list to
// {client.base_url}/api/v1/boards/{board} after every change.
//
// Delivery happens on the publisher's own goroutine. ProjectsChanged only
// queues the snapshot, so a slow or failing mirror never holds up the store.
// When the queue is full the oldest snapshot is dropped; every snapshot is the
// full list, so only the newest one matters.
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/projectboard/internal/platform/logging"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// ServiceName is the peer name of the mirror on outbound spans and metrics.
const ServiceName = "board-mirror"

var (
	_ ports.Subscriber    = (*Publisher)(nil)
	_ ports.HealthChecker = (*Publisher)(nil)
)

// Client is the outbound HTTP surface the publisher needs.
// *httpclient.Client satisfies it.
type Client interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
	URL(path string) string
	Name() string
	HealthCheck(ctx context.Context) error
}

// pending is a queued snapshot. ids carries only the originating request's
// identifiers; delivery runs under the publisher's own context.
type pending struct {
	ids      context.Context
	projects []project.Project
}

// Stats counts what happened to queued snapshots.
type Stats struct {
	Published int64
	Failed    int64
	Dropped   int64
}

// Publisher is a ports.Subscriber that mirrors the board.
type Publisher struct {
	client Client
	board  string
	queue  chan pending
	logger *slog.Logger
	now    func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup
	// aborted is the snapshot whose delivery Close interrupted. Written only
	// by the run goroutine; read by Close after that goroutine has exited.
	aborted *pending

	published atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64
}

// New creates a publisher for board. queueSize below one is treated as one.
func New(client Client, board string, queueSize int, logger *slog.Logger) *Publisher {
	return &Publisher{
		client: client,
		board:  board,
		queue:  make(chan pending, max(queueSize, 1)),
		logger: logging.OrDiscard(logger),
		now:    time.Now,
		cancel: func() {},
	}
}

// Start launches the delivery goroutine. It stops when ctx is canceled or
// Close is called.
func (p *Publisher) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.run(ctx)
	}()
}

// Close stops the delivery goroutine, aborting any publish in flight, and
// then publishes the newest snapshot still queued, if any, under ctx. It
// gives up when ctx ends first.
func (p *Publisher) Close(ctx context.Context) error {
	p.cancel()

	stopped := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		return fmt.Errorf("stopping board publisher: %w", ctx.Err())
	}

	last, ok := p.latest()
	if !ok && p.aborted != nil {
		last, ok = *p.aborted, true
	}
	if !ok {
		return nil
	}
	return p.Publish(httpclient.DetachIDs(ctx, last.ids), last.projects)
}

// ProjectsChanged queues projects for delivery. It never blocks.
func (p *Publisher) ProjectsChanged(ctx context.Context, projects []project.Project) {
	item := pending{
		ids:      httpclient.DetachIDs(context.Background(), ctx),
		projects: projects,
	}

	for {
		select {
		case p.queue <- item:
			return
		default:
		}

		select {
		case <-p.queue:
			p.dropped.Add(1)
		default:
		}
	}
}

// Publish sends projects to the mirror synchronously.
func (p *Publisher) Publish(ctx context.Context, projects []project.Project) error {
	body, err := json.Marshal(toSnapshot(p.board, projects, p.now()))
	if err != nil {
		return fmt.Errorf("marshaling board snapshot: %w", err)
	}

	path := "/api/v1/boards/" + url.PathEscape(p.board)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, p.client.URL(path), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating PUT request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return translateStatus(resp)
		}
	}
	if err != nil {
		return fmt.Errorf("PUT %s: %w", path, err)
	}
	return nil
}

// Stats returns delivery counters.
func (p *Publisher) Stats() Stats {
	return Stats{
		Published: p.published.Load(),
		Failed:    p.failed.Load(),
		Dropped:   p.dropped.Load(),
	}
}

// Name identifies the publisher in readiness results.
func (p *Publisher) Name() string {
	return "board-publisher"
}

// HealthCheck reports the mirror's breaker state.
func (p *Publisher) HealthCheck(ctx context.Context) error {
	return p.client.HealthCheck(ctx)
}

func (p *Publisher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case item := <-p.queue:
			if newer, ok := p.latest(); ok {
				p.dropped.Add(1)
				item = newer
			}
			p.deliver(ctx, item)
		}
	}
}

// latest drains the queue and returns the newest item.
func (p *Publisher) latest() (pending, bool) {
	var (
		last pending
		ok   bool
	)
	for {
		select {
		case item := <-p.queue:
			if ok {
				p.dropped.Add(1)
			}
			last, ok = item, true
		default:
			return last, ok
		}
	}
}

// deliver publishes item under runCtx, so stopping the publisher aborts the
// request. An aborted item is left for Close to send.
func (p *Publisher) deliver(runCtx context.Context, item pending) {
	ctx := httpclient.DetachIDs(runCtx, item.ids)
	if err := p.Publish(ctx, item.projects); err != nil {
		if runCtx.Err() != nil {
			p.aborted = &item
			return
		}
		p.failed.Add(1)
		p.logger.ErrorContext(ctx, "publishing board snapshot failed",
			logging.Operation("Publish"),
			slog.String("board", p.board),
			slog.Int("count", len(item.projects)),
			logging.Err(err),
		)
		return
	}

	p.published.Add(1)
	p.logger.DebugContext(ctx, "board snapshot published",
		slog.String("board", p.board),
		slog.Int("count", len(item.projects)),
	)
}
