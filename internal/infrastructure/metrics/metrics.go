package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus metrics for webhook deliveries and signed API calls.
var (
	WebhookDeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "afdian_webhook_deliveries_total",
			Help: "Webhook deliveries by decision and reason",
		},
		[]string{"decision", "reason"},
	)

	VerificationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "afdian_verification_duration_seconds",
			Help:    "Duration of order verification against the query-order endpoint",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	APICallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "afdian_api_calls_total",
			Help: "Signed open API calls by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	APICallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "afdian_api_call_duration_seconds",
			Help:    "Duration of signed open API calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	EventTasksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "afdian_event_tasks_total",
			Help: "Event processing tasks by outcome",
		},
		[]string{"outcome"},
	)

	EventTasksInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "afdian_event_tasks_in_flight",
			Help: "Event processing tasks currently running",
		},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
)

var registerOnce sync.Once

// Register registers all collectors on the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			WebhookDeliveriesTotal,
			VerificationDuration,
			APICallsTotal,
			APICallDuration,
			EventTasksTotal,
			EventTasksInFlight,
			HTTPRequestsTotal,
		)
	})
}
