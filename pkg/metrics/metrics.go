package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess  = "success"
	StatusFailed   = "failed"
	StatusRejected = "rejected"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// ContactDispatchCount counts submissions by provider and outcome
	ContactDispatchCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_dispatch_count",
			Help: "Total number of contact submissions handed to the mail provider",
		},
		[]string{"provider", "status"}, // status: success, failed, rejected
	)

	ContactDispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contact_dispatch_duration_seconds",
			Help:    "Mail provider call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
		},
		[]string{"provider"},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordContactDispatch counts one submission and, unless it never reached
// the provider, observes how long the provider took.
func RecordContactDispatch(provider, status string, duration time.Duration) {
	ContactDispatchCount.WithLabelValues(provider, status).Inc()
	if status != StatusRejected {
		ContactDispatchDuration.WithLabelValues(provider).Observe(duration.Seconds())
	}
}
