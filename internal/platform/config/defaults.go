package config

import "github.com/jsamuelsen11/projectboard/internal/domain/project"

const (
	defaultServerPort = 8080

	defaultImportWorkers = 4

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 10.0
	defaultRateLimitBurst = 5

	defaultPublisherQueueSize = 16
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
// The form section starts from the domain's own rules.
func defaults() map[string]any {
	rules := project.DefaultRules()
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"board.form.title.min_length":       rules.Title.MinLength,
		"board.form.title.max_length":       rules.Title.MaxLength,
		"board.form.description.min_length": rules.Description.MinLength,
		"board.form.description.max_length": rules.Description.MaxLength,
		"board.form.max_people":             rules.MaxPeople,
		"board.import_workers":              defaultImportWorkers,

		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"publisher.enabled":    false,
		"publisher.board":      "default",
		"publisher.queue_size": defaultPublisherQueueSize,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "projectboard",
	}
}
