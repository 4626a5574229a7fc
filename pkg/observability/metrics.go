// Package observability provides Prometheus metrics for the hubbridge relay.
//
// Metrics are recorded outside the core API client: request metrics come
// from an instrumented http.RoundTripper injected at client construction,
// and notification metrics from the bridge loop. The core stays silent.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APIBuckets defines histogram buckets suited for interactive REST calls,
// ranging from 10ms to 30s.
var APIBuckets = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30}

var (
	// APIRequestsTotal counts AnswerHub API requests by endpoint and status class.
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hubbridge_api_requests_total",
			Help: "AnswerHub API requests",
		},
		[]string{"endpoint", "status"},
	)

	// APIRequestDuration records AnswerHub API request duration in seconds.
	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hubbridge_api_request_duration_seconds",
			Help:    "AnswerHub API request duration",
			Buckets: APIBuckets,
		},
		[]string{"endpoint"},
	)

	// NotificationsTotal counts chat webhook deliveries by outcome.
	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hubbridge_notifications_total",
			Help: "Chat notifications",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		APIRequestsTotal,
		APIRequestDuration,
		NotificationsTotal,
	)
}

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
