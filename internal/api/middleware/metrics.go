package middleware

import (
	"net/http"
	"strconv"
	"time"

	"customer-management/internal/infrastructure/monitoring"

	"github.com/go-chi/chi/v5/middleware"
)

// MetricsMiddleware records request counts and latencies labelled by route pattern, keeping path cardinality bounded.
func MetricsMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				monitoring.RecordHTTPRequest(r.Method, routePattern(r), strconv.Itoa(ww.Status()), time.Since(start))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
