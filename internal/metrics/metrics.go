// Package metrics instruments the reference telemetry server with Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "telemetry_http_requests_total",
		Help: "Total number of HTTP requests by method, path, and status code",
	}, []string{"method", "path", "code"})

	RequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "telemetry_http_request_duration_seconds",
		Help:    "Duration of HTTP request handling in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	ReadingsRecordedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "telemetry_readings_recorded_total",
		Help: "Total number of sensor readings stored, by sensor type",
	}, []string{"sensor_type"})

	registerOnce sync.Once
)

// Register registers all collectors with the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestDurationSeconds,
			ReadingsRecordedTotal,
		)
	})
}

// Handler returns an HTTP handler that exposes the registered metrics.
func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}

// Middleware instruments HTTP handlers with request count and latency metrics.
func Middleware(next http.Handler) http.Handler {
	Register()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(recorder, r)
		RequestDurationSeconds.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
		RequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(recorder.status)).Inc()
	})
}

// statusRecorder captures the response status code for instrumentation.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
