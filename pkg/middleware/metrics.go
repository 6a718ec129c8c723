package middleware

import (
	"net/http"
	"strconv"
	"time"

	"vehicle-leasing/pkg/metrics"
)

// Metrics records request count and duration per method/status.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			metrics.ObserveHTTPRequest(r.Method, strconv.Itoa(rw.statusCode), time.Since(start).Seconds())
		})
	}
}
