package observability

import (
	"context"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetLogger_AddsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := Log
	Log = zap.New(core)
	t.Cleanup(func() { Log = prev })

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	GetLogger(ctx).Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
	_, hasTrace := entries[0].ContextMap()["trace_id"]
	assert.False(t, hasTrace)
}

func TestInitLogger_BadLevelFallsBack(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	InitLogger("logger-test", "not-a-level")

	assert.True(t, Log.Core().Enabled(zap.InfoLevel))
	assert.False(t, Log.Core().Enabled(zap.DebugLevel))
}

func TestGetLogger_DefaultsToNop(t *testing.T) {
	prev := Log
	Log = zap.NewNop()
	t.Cleanup(func() { Log = prev })

	logger := GetLogger(context.Background())

	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}
