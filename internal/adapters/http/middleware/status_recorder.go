// Package middleware provides the inbound HTTP request pipeline.
//
// The router installs the middleware in this order:
//
//	Recovery -> RequestID -> CorrelationID -> OpenTelemetry -> Logging -> Timeout -> handler
package middleware

import "net/http"

// statusRecorder remembers what a handler sent so the outer middleware can
// log, meter and trace it. committed flips on the first WriteHeader or Write.
type statusRecorder struct {
	http.ResponseWriter
	status    int
	committed bool
	bytes     int64
}

func recordStatus(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards only the first status.
func (rw *statusRecorder) WriteHeader(code int) {
	if rw.committed {
		return
	}
	rw.status = code
	rw.committed = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	rw.committed = true
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *statusRecorder) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
