// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import (
	"time"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Board     BoardConfig     `koanf:"board"`
	Client    ClientConfig    `koanf:"client"`
	Publisher PublisherConfig `koanf:"publisher"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// BoardConfig holds the project form rules and batch import settings.
type BoardConfig struct {
	Form          FormConfig `koanf:"form"`
	ImportWorkers int        `koanf:"import_workers"`
}

// FormConfig mirrors project.Rules. MinPeople is optional; when unset a
// people count of zero is accepted.
type FormConfig struct {
	Title       LengthConfig `koanf:"title"`
	Description LengthConfig `koanf:"description"`
	MinPeople   *int         `koanf:"min_people"`
	MaxPeople   int          `koanf:"max_people"`
}

// LengthConfig bounds the trimmed length of a text field. Zero means unbounded.
type LengthConfig struct {
	MinLength int `koanf:"min_length"`
	MaxLength int `koanf:"max_length"`
}

// Rules converts the form section into the domain's validation rules.
func (b BoardConfig) Rules() project.Rules {
	return project.Rules{
		Title:       project.FieldLimits{MinLength: b.Form.Title.MinLength, MaxLength: b.Form.Title.MaxLength},
		Description: project.FieldLimits{MinLength: b.Form.Description.MinLength, MaxLength: b.Form.Description.MaxLength},
		MinPeople:   b.Form.MinPeople,
		MaxPeople:   b.Form.MaxPeople,
	}
}

// ClientConfig holds settings for the outbound board snapshot client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token bucket settings. A zero RequestsPerSecond
// disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// PublisherConfig controls the board snapshot publisher.
type PublisherConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Board     string `koanf:"board"`
	QueueSize int    `koanf:"queue_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
