package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	HttpFaultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_faults_total",
			Help: "Total number of requests answered by the fault handler",
		},
		[]string{"service"},
	)

	HttpRateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the per-IP rate limit",
		},
		[]string{"service"},
	)

	MetricEmissionFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metric_emission_failures_total",
			Help: "Total number of metric batches the sink failed to accept",
		},
		[]string{"service", "sink"},
	)
)
