package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusSink folds samples into local collectors scraped from /metrics:
// Count samples feed a counter, Milliseconds samples a histogram.
type PrometheusSink struct {
	counts  *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

func NewPrometheusSink(reg prometheus.Registerer) *PrometheusSink {
	factory := promauto.With(reg)
	return &PrometheusSink{
		counts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emitted_samples_total",
				Help: "Sum of Count samples emitted by the service",
			},
			[]string{"namespace", "name"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "emitted_latency_milliseconds",
				Help:    "Distribution of Milliseconds samples emitted by the service",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
			},
			[]string{"namespace", "name"},
		),
	}
}

func (s *PrometheusSink) Put(_ context.Context, samples []Sample) error {
	for _, sample := range samples {
		switch sample.Unit {
		case UnitMilliseconds:
			s.latency.WithLabelValues(sample.Namespace, sample.Name).Observe(sample.Value)
		default:
			s.counts.WithLabelValues(sample.Namespace, sample.Name).Add(sample.Value)
		}
	}
	return nil
}
