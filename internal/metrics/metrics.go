package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "staffing_operations_total", Help: "Total core operations by entity, operation and outcome"},
		[]string{"entity", "op", "outcome"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "staffing_http_requests_total", Help: "Total HTTP requests by method, route and status"},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "staffing_http_request_duration_seconds", Help: "HTTP request latency", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
)

func Register() {
	prometheus.MustRegister(Operations, HTTPRequests, HTTPDuration)
}
