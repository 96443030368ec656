package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/metrics"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/observability"
)

type countingSink struct {
	errors5xx atomic.Int32
	err       error
}

func (s *countingSink) Put(_ context.Context, samples []metrics.Sample) error {
	for _, sample := range samples {
		if sample.Name == metrics.Errors5xx {
			s.errors5xx.Add(1)
		}
	}
	return s.err
}

func TestRecovery_PanicBecomes500(t *testing.T) {
	sink := &countingSink{}
	emitter := metrics.NewEmitter(sink)
	h := Recovery(NewFaultReporter("recovery-test", emitter))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler exploded")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inventory", nil))
	emitter.Wait()

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", rec.Body.String())
	assert.Equal(t, int32(1), sink.errors5xx.Load())
}

func TestRecovery_SinkFailureStillAnswers500(t *testing.T) {
	sink := &countingSink{err: errors.New("sink down")}
	emitter := metrics.NewEmitter(sink)
	h := Recovery(NewFaultReporter("recovery-test", emitter))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New("boom"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	emitter.Wait()

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, int32(1), sink.errors5xx.Load())
}

func TestRecovery_PassThrough(t *testing.T) {
	sink := &countingSink{}
	emitter := metrics.NewEmitter(sink)
	h := Recovery(NewFaultReporter("recovery-test", emitter))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	emitter.Wait()

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, sink.errors5xx.Load())
}

func TestRecovery_AbortHandlerIsRepanicked(t *testing.T) {
	h := Recovery(NewFaultReporter("recovery-test", nil))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	require.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestRateLimit(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	prev := observability.Log
	observability.Log = zap.New(core)
	t.Cleanup(func() { observability.Log = prev })

	h := RateLimit("ratelimit-test", 2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.RemoteAddr = "192.168.1.100:1234"
		last = httptest.NewRecorder()
		h.ServeHTTP(last, req)
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "Too Many Requests", last.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(observability.HttpRateLimitedTotal.WithLabelValues("ratelimit-test")))

	entries := logs.FilterMessage("rate_limited").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/orders", entries[0].ContextMap()["path"])
}

func TestRateLimit_SeparateClients(t *testing.T) {
	h := RateLimit("ratelimit-test-clients", 1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for _, addr := range []string{"10.0.0.1:1000", "10.0.0.2:1000"} {
		req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, addr)
	}
}
