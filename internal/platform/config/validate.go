package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
)

var boardNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Validate reports every bad setting at once, joined with errors.Join.
func (c *Config) Validate() error {
	var p problems
	c.Server.check(&p)
	c.Log.check(&p)
	c.Board.check(&p)
	c.Client.check(&p)
	if c.Publisher.Enabled {
		c.Publisher.check(&p)
	}
	if c.Telemetry.Enabled {
		c.Telemetry.check(&p)
	}
	return errors.Join(p...)
}

// problems collects failed rules. when(bad, ...) records one if bad holds.
type problems []error

func (p *problems) when(bad bool, format string, args ...any) {
	if bad {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func oneOf(value string, allowed ...string) bool {
	return slices.Contains(allowed, value)
}

func (s *ServerConfig) check(p *problems) {
	p.when(s.Port < 1 || s.Port > 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.when(s.ReadTimeout <= 0, "server.read_timeout must be positive, got %s", s.ReadTimeout)
	p.when(s.WriteTimeout <= 0, "server.write_timeout must be positive, got %s", s.WriteTimeout)
}

func (l *LogConfig) check(p *problems) {
	p.when(!oneOf(l.Level, "debug", "info", "warn", "error"),
		"log.level must be debug, info, warn or error; got %q", l.Level)
	p.when(!oneOf(l.Format, "json", "text"), "log.format must be json or text; got %q", l.Format)
}

func (b *BoardConfig) check(p *problems) {
	b.Form.Title.check(p, "board.form.title")
	b.Form.Description.check(p, "board.form.description")

	maxPeople := b.Form.MaxPeople
	p.when(maxPeople < 1, "board.form.max_people must be >= 1, got %d", maxPeople)
	if minPeople := b.Form.MinPeople; minPeople != nil {
		p.when(*minPeople < 0, "board.form.min_people must be >= 0, got %d", *minPeople)
		p.when(*minPeople > maxPeople,
			"board.form.min_people (%d) must not exceed max_people (%d)", *minPeople, maxPeople)
	}
	p.when(b.ImportWorkers < 1, "board.import_workers must be >= 1, got %d", b.ImportWorkers)
}

// A zero max_length means unbounded.
func (l LengthConfig) check(p *problems, key string) {
	p.when(l.MinLength < 0, "%s.min_length must be >= 0, got %d", key, l.MinLength)
	p.when(l.MaxLength < 0, "%s.max_length must be >= 0, got %d", key, l.MaxLength)
	p.when(l.MaxLength > 0 && l.MinLength > l.MaxLength,
		"%s.min_length (%d) must not exceed max_length (%d)", key, l.MinLength, l.MaxLength)
}

func (cl *ClientConfig) check(p *problems) {
	p.when(cl.BaseURL == "", "client.base_url must not be empty")
	p.when(cl.Timeout <= 0, "client.timeout must be positive, got %s", cl.Timeout)
	p.when(cl.Retry.MaxAttempts < 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.when(cl.Retry.Multiplier <= 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.when(cl.CircuitBreaker.MaxFailures < 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.when(rl.RequestsPerSecond < 0, "client.rate_limit.requests_per_second must be >= 0, got %g", rl.RequestsPerSecond)
	p.when(rl.RequestsPerSecond > 0 && rl.BurstSize < 1, "client.rate_limit.burst_size must be >= 1, got %d", rl.BurstSize)
}

func (pc *PublisherConfig) check(p *problems) {
	p.when(!boardNamePattern.MatchString(pc.Board),
		"publisher.board must be lowercase letters, digits and dashes, got %q", pc.Board)
	p.when(pc.QueueSize < 1, "publisher.queue_size must be >= 1, got %d", pc.QueueSize)
}

func (t *TelemetryConfig) check(p *problems) {
	p.when(!oneOf(t.Exporter, "stdout", "otlp"), "telemetry.exporter must be stdout or otlp; got %q", t.Exporter)
	p.when(t.Exporter == "otlp" && t.Endpoint == "", "telemetry.endpoint must not be empty when exporter is otlp")
}
