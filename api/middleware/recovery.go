// ABOUTME: Panic recovery middleware for API endpoints
// ABOUTME: Converts panics into the generic processing-failure response

package middleware

import (
	"net/http"

	"leadscout-api/core/interfaces"
)

// RecoveryMiddleware creates a middleware that recovers from handler panics.
// Details are logged server-side only; the caller sees the generic error.
func RecoveryMiddleware(logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic while processing request", map[string]interface{}{
						"method": r.Method,
						"path":   r.URL.Path,
						"panic":  rec,
					})
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"Failed to process request"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
