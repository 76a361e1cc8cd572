package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Middleware wraps the /metrics handler itself with request duration tracking,
// so scrapes are visible in the same registry they read from.
type Middleware struct {
	histScrapeDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer, buckets []float64) *Middleware {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	factory := promauto.With(reg)
	return &Middleware{
		histScrapeDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "metrics_scrape_duration_seconds",
			Help:    "Duration of metrics endpoint scrapes in seconds",
			Buckets: buckets,
		}, []string{"route", "status_code"}),
	}
}

func (m *Middleware) WrapHandler(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(sw, r)
		m.histScrapeDuration.With(prometheus.Labels{
			"route":       route,
			"status_code": strconv.Itoa(sw.statusCode),
		}).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.statusCode = statusCode
}
