package httpclient

import "context"

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// Outbound header names carrying the inbound request's identifiers.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// WithRequestID stores the inbound request ID so outbound calls can forward it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation ID so outbound calls can forward it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// RequestIDFromContext returns the request ID stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// CorrelationIDFromContext returns the correlation ID stored by WithCorrelationID.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// DetachIDs copies the request and correlation IDs from src onto dst. Work
// that outlives a request (such as a queued board publish) keeps the IDs
// without inheriting the request's cancellation.
func DetachIDs(dst, src context.Context) context.Context {
	if id := RequestIDFromContext(src); id != "" {
		dst = WithRequestID(dst, id)
	}
	if id := CorrelationIDFromContext(src); id != "" {
		dst = WithCorrelationID(dst, id)
	}
	return dst
}
