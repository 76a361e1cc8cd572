package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/leancoach/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

func RequestMetrics(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			resp := &responseWriter{respWriter, http.StatusOK}
			start := time.Now()

			// handler call
			next.ServeHTTP(resp, req)

			statusCode := strconv.Itoa(resp.statusCode)
			metricsManager.CounterRequests.With(
				prometheus.Labels{
					"method": req.Method,
					"status": statusCode,
				},
			).Inc()

			route := "unknown"
			if muxRoute := mux.CurrentRoute(req); muxRoute != nil && muxRoute.GetName() != "" {
				route = muxRoute.GetName()
			}
			metricsManager.HistogramRequestDuration.With(
				prometheus.Labels{
					"route":       route,
					"method":      req.Method,
					"status_code": statusCode,
				},
			).Observe(time.Since(start).Seconds())
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.statusCode = statusCode
}
