package metrics

import (
	"context"

	"go.uber.org/zap"
)

// LogSink writes samples to the structured log. Useful locally where no
// aggregation backend is running.
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Put(_ context.Context, samples []Sample) error {
	for _, sample := range samples {
		s.log.Info("metric sample",
			zap.String("namespace", sample.Namespace),
			zap.String("name", sample.Name),
			zap.Float64("value", sample.Value),
			zap.String("unit", string(sample.Unit)),
			zap.Time("sample_time", sample.Timestamp),
		)
	}
	return nil
}
