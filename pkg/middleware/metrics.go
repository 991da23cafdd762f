package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mwkit/mwkit/pkg/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics, registered once at package init via promauto.
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mwkit_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mwkit_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Metrics returns a middleware that records a request counter and a
// latency histogram per request, labeled by method, path, and status.
func Metrics() Middleware {
	return common.From(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next(rw, r)

		status := strconv.Itoa(rw.statusCode)
		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

// MetricsHandler returns the handler exposing the collected metrics in
// Prometheus exposition format, for mounting at /metrics or similar.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
