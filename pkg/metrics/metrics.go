package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vehicle_leasing",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vehicle_leasing",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method"},
	)

	leasesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vehicle_leasing",
			Subsystem: "lease",
			Name:      "created_total",
			Help:      "Total number of leases created.",
		},
	)

	leasePaymentFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vehicle_leasing",
			Subsystem: "lease",
			Name:      "payment_failures_total",
			Help:      "Payment bookkeeping failures during lease acquisition (best-effort step).",
		},
	)

	leaseStatusConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vehicle_leasing",
			Subsystem: "lease",
			Name:      "status_flip_conflicts_total",
			Help:      "Lease acquisitions aborted because the vehicle was no longer available at commit time.",
		},
	)

	notificationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vehicle_leasing",
			Subsystem: "notifier",
			Name:      "failures_total",
			Help:      "Welcome notification dispatch failures.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		leasesCreated,
		leasePaymentFailures,
		leaseStatusConflicts,
		notificationFailures,
	)
}

// Handler serves the application registry at /metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func ObserveHTTPRequest(method, status string, seconds float64) {
	httpRequests.WithLabelValues(method, status).Inc()
	httpDuration.WithLabelValues(method).Observe(seconds)
}

func LeaseCreated()              { leasesCreated.Inc() }
func LeasePaymentFailed()        { leasePaymentFailures.Inc() }
func LeaseStatusFlipConflicted() { leaseStatusConflicts.Inc() }
func NotificationFailed()        { notificationFailures.Inc() }
