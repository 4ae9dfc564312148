// Package metrics exposes Prometheus collectors for the site backend.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec
	contactSubmissionsTotal    prometheus.Counter
	webhookDeliveriesTotal     *prometheus.CounterVec
	webhookAttemptsTotal       prometheus.Counter

	once sync.Once
)

// Init initializes the Prometheus collectors. Safe to call more than once.
func Init() {
	once.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method"},
		)

		contactSubmissionsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "contact_submissions_total",
				Help: "Total number of stored contact form submissions.",
			},
		)

		webhookDeliveriesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_webhook_deliveries_total",
				Help: "Total number of CRM webhook deliveries, labeled by outcome.",
			},
			[]string{"outcome"},
		)

		webhookAttemptsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "crm_webhook_attempts_total",
				Help: "Total number of CRM webhook HTTP attempts, retries included.",
			},
		)
	})
}

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	Init()
	return promhttp.Handler()
}

func IncContactSubmission() {
	Init()
	contactSubmissionsTotal.Inc()
}

// IncWebhookDelivery records a finished delivery. Outcome is one of
// "success", "failure" or "skipped".
func IncWebhookDelivery(outcome string) {
	Init()
	webhookDeliveriesTotal.WithLabelValues(outcome).Inc()
}

func IncWebhookAttempt() {
	Init()
	webhookAttemptsTotal.Inc()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// Middleware counts requests and observes latency for every handler it wraps.
func Middleware(next http.Handler) http.Handler {
	Init()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		code := sw.status
		if code == 0 {
			code = http.StatusOK
		}
		httpRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(code)).Inc()
		httpRequestDurationSeconds.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}
