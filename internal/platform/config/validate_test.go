package config_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/projectboard/internal/platform/config"
)

// validConfig mirrors base.yaml with the optional features off.
func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  2 * time.Minute,
		},
		Log:   config.LogConfig{Level: "info", Format: "json"},
		Board: config.BoardConfig{Form: config.FormConfig{MaxPeople: 8}, ImportWorkers: 4},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2,
			},
			CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 1},
			RateLimit:      config.RateLimitConfig{RequestsPerSecond: 10, BurstSize: 5},
		},
		Publisher: config.PublisherConfig{Board: "Not Checked While Off"},
		Telemetry: config.TelemetryConfig{Exporter: "stdout"},
	}
}

func people(n int) *int { return &n }

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantKey string // empty means valid
	}{
		{"valid", func(*config.Config) {}, ""},
		{"port zero", func(c *config.Config) { c.Server.Port = 0 }, "server.port"},
		{"no write timeout", func(c *config.Config) { c.Server.WriteTimeout = 0 }, "server.write_timeout"},
		{"unknown log level", func(c *config.Config) { c.Log.Level = "verbose" }, "log.level"},
		{"unknown log format", func(c *config.Config) { c.Log.Format = "xml" }, "log.format"},
		{"zero max people", func(c *config.Config) { c.Board.Form.MaxPeople = 0 }, "board.form.max_people"},
		{"negative min people", func(c *config.Config) { c.Board.Form.MinPeople = people(-1) }, "board.form.min_people"},
		{"min people above max", func(c *config.Config) { c.Board.Form.MinPeople = people(9) }, "board.form.min_people"},
		{"min people equal to max", func(c *config.Config) { c.Board.Form.MinPeople = people(8) }, ""},
		{
			"title min above max",
			func(c *config.Config) { c.Board.Form.Title = config.LengthConfig{MinLength: 10, MaxLength: 5} },
			"board.form.title.min_length",
		},
		{
			"description min with unbounded max",
			func(c *config.Config) { c.Board.Form.Description = config.LengthConfig{MinLength: 10} },
			"",
		},
		{"zero import workers", func(c *config.Config) { c.Board.ImportWorkers = 0 }, "board.import_workers"},
		{"empty client base url", func(c *config.Config) { c.Client.BaseURL = "" }, "client.base_url"},
		{"rate limit without burst", func(c *config.Config) { c.Client.RateLimit.BurstSize = 0 }, "client.rate_limit.burst_size"},
		{"rate limit off needs no burst", func(c *config.Config) { c.Client.RateLimit = config.RateLimitConfig{} }, ""},
		{
			"publisher board name",
			func(c *config.Config) { c.Publisher = config.PublisherConfig{Enabled: true, Board: "Main Board", QueueSize: 1} },
			"publisher.board",
		},
		{
			"publisher queue",
			func(c *config.Config) { c.Publisher = config.PublisherConfig{Enabled: true, Board: "main"} },
			"publisher.queue_size",
		},
		{
			"otlp without endpoint",
			func(c *config.Config) { c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp"} },
			"telemetry.endpoint",
		},
		{
			"unknown exporter",
			func(c *config.Config) { c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "zipkin"} },
			"telemetry.exporter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			switch {
			case tt.wantKey == "" && err != nil:
				t.Errorf("Validate() error = %v, want nil", err)
			case tt.wantKey != "" && err == nil:
				t.Errorf("Validate() = nil, want error naming %s", tt.wantKey)
			case tt.wantKey != "" && !strings.Contains(err.Error(), tt.wantKey):
				t.Errorf("Validate() error = %v, want it to name %s", err, tt.wantKey)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Server.Port = -1
	cfg.Log.Level = "loud"
	cfg.Board.ImportWorkers = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want joined errors")
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 3 {
		t.Errorf("Validate() error = %v, want three joined problems", err)
	}
}

func TestBoardConfig_Rules(t *testing.T) {
	t.Parallel()

	b := config.BoardConfig{Form: config.FormConfig{
		Title:       config.LengthConfig{MinLength: 2, MaxLength: 40},
		Description: config.LengthConfig{MaxLength: 500},
		MinPeople:   people(1),
		MaxPeople:   6,
	}}

	rules := b.Rules()
	if rules.Title.MinLength != 2 || rules.Title.MaxLength != 40 {
		t.Errorf("Rules().Title = %+v, want {2 40}", rules.Title)
	}
	if rules.Description.MaxLength != 500 {
		t.Errorf("Rules().Description.MaxLength = %d, want 500", rules.Description.MaxLength)
	}
	if rules.MinPeople == nil || *rules.MinPeople != 1 {
		t.Errorf("Rules().MinPeople = %v, want 1", rules.MinPeople)
	}
	if rules.MaxPeople != 6 {
		t.Errorf("Rules().MaxPeople = %d, want 6", rules.MaxPeople)
	}
}
