package metrics

import (
	"go.uber.org/zap"

	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/observability"
)

// LogAndCount is the production failure callback: the batch is dropped, the
// failure is logged and counted.
func LogAndCount(log *zap.Logger, serviceName, sinkName string) ErrorFunc {
	return func(err error, samples []Sample) {
		observability.MetricEmissionFailuresTotal.WithLabelValues(serviceName, sinkName).Inc()

		names := make([]string, len(samples))
		for i, s := range samples {
			names[i] = s.Name
		}
		log.Warn("metric emission failed",
			zap.String("sink", sinkName),
			zap.Strings("samples", names),
			zap.Error(err),
		)
	}
}
