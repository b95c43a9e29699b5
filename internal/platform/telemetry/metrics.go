package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// meterName scopes every instrument to this module.
const meterName = "github.com/jsamuelsen11/projectboard"

// Submission results recorded on projects.submitted.total.
const (
	ResultAccepted = "accepted"
	ResultInvalid  = "invalid"
)

// Metrics holds pre-registered OpenTelemetry metric instruments. All methods
// are safe to call on a nil *Metrics, which records nothing.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	ProjectsSubmitted     metric.Int64Counter
	ProjectsStored        metric.Int64Gauge
}

// NewMetrics creates all metric instruments using the given MeterProvider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)

	serverDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}

	serverTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of incoming HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.server.request.total: %w", err)
	}

	clientDuration, err := meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of outgoing HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.client.request.duration: %w", err)
	}

	clientTotal, err := meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of outgoing HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.client.request.total: %w", err)
	}

	submitted, err := meter.Int64Counter(
		"projects.submitted.total",
		metric.WithDescription("Project submissions by validation result"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating projects.submitted.total: %w", err)
	}

	stored, err := meter.Int64Gauge(
		"projects.stored",
		metric.WithDescription("Number of projects currently on the board"),
		metric.WithUnit("{project}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating projects.stored: %w", err)
	}

	return &Metrics{
		ServerRequestDuration: serverDuration,
		ServerRequestTotal:    serverTotal,
		ClientRequestDuration: clientDuration,
		ClientRequestTotal:    clientTotal,
		ProjectsSubmitted:     submitted,
		ProjectsStored:        stored,
	}, nil
}

// RecordSubmission counts one submission with the given result.
func (m *Metrics) RecordSubmission(ctx context.Context, result string) {
	if m == nil {
		return
	}
	m.ProjectsSubmitted.Add(ctx, 1, metric.WithAttributes(AttrResult.String(result)))
}

// ProjectsChanged records the list length. It lets Metrics subscribe to the
// project store directly.
func (m *Metrics) ProjectsChanged(ctx context.Context, projects []project.Project) {
	if m == nil {
		return
	}
	m.ProjectsStored.Record(ctx, int64(len(projects)))
}
