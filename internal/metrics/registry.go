package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the carrier-integration metrics. One Registry is created per
// process and shared by every client instance.
type Registry struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RetriesTotal    *prometheus.CounterVec
}

// NewRegistry creates and registers the carrier metrics on reg. Pass a fresh
// prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewRegistry(reg prometheus.Registerer) *Registry {
	r := &Registry{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "addinteli_requests_total",
				Help: "Completed carrier API calls by endpoint and status code.",
			},
			[]string{"endpoint", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "addinteli_request_duration_seconds",
				Help:    "Wall-clock duration of carrier API calls, retries included.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		RetriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "addinteli_retries_total",
				Help: "Re-attempts against the carrier API by endpoint.",
			},
			[]string{"endpoint"},
		),
	}

	reg.MustRegister(r.RequestsTotal, r.RequestDuration, r.RetriesTotal)
	return r
}

// ObserveRequest records one completed call.
func (r *Registry) ObserveRequest(endpoint string, status int, elapsed time.Duration) {
	r.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	r.RequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveRetry records one re-attempt.
func (r *Registry) ObserveRetry(endpoint string) {
	r.RetriesTotal.WithLabelValues(endpoint).Inc()
}
