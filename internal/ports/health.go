package ports

import "context"

// HealthChecker is a dependency the board needs before it reports ready,
// such as the snapshot publisher's downstream board API.
type HealthChecker interface {
	Name() string
	// HealthCheck returns nil while the dependency is usable.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps each checker's name to its result; nil is healthy.
	CheckAll(ctx context.Context) map[string]error
}
