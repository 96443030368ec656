package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestInitTracer(t *testing.T) {
	tp, err := InitTracer("tracer-test", "instance-1", "http://127.0.0.1:1/api/traces")
	require.NoError(t, err)
	require.NotNil(t, tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(noop.NewTracerProvider())
	})

	assert.Same(t, tp, otel.GetTracerProvider())

	fields := otel.GetTextMapPropagator().Fields()
	assert.Contains(t, fields, "traceparent")
	assert.Contains(t, fields, "baggage")

	_, span := otel.Tracer("tracer-test").Start(context.Background(), "EcommBackend")
	require.True(t, span.SpanContext().IsValid())
	ro, ok := span.(sdktrace.ReadOnlySpan)
	require.True(t, ok)
	span.End()

	attrs := map[string]string{}
	for _, kv := range ro.Resource().Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	assert.Equal(t, "tracer-test", attrs["service.name"])
	assert.Equal(t, "instance-1", attrs["service.instance.id"])

	// No collector listens here; the export error is irrelevant.
	_ = tp.Shutdown(context.Background())
}
