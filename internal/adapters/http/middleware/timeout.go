package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
)

// Timeout returns middleware that bounds each request with a deadline. The
// handler runs on the request goroutine with the deadline on its context;
// when it returns without having written anything after the deadline passed,
// a 504 problem response is sent.
//
// A non-positive timeout disables the middleware.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			rw := recordStatus(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			if !rw.committed && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				dto.WriteErrorResponse(rw, r, ctx.Err())
			}
		})
	}
}
