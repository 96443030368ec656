package observability

import (
	"context"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log = zap.NewNop()

func InitLogger(serviceName, level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := config.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	Log = logger.With(zap.String("service", serviceName))
}

// GetLogger returns the service logger enriched with the trace and request
// identifiers carried by ctx.
func GetLogger(ctx context.Context) *zap.Logger {
	logger := Log

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		logger = logger.With(
			zap.String("trace_id", span.SpanContext().TraceID().String()),
			zap.String("span_id", span.SpanContext().SpanID().String()),
		)
	}

	if reqID := middleware.GetReqID(ctx); reqID != "" {
		logger = logger.With(zap.String("request_id", reqID))
	}

	return logger
}
