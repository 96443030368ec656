package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/handler"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/middleware"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/observability"
)

type Options struct {
	ServiceName       string
	TraceSegment      string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// NewRouter builds the façade route table. Every request runs inside a
// trace segment named opts.TraceSegment; with no tracer provider installed
// the segment is a no-op.
func NewRouter(h *handler.Handler, faults *middleware.FaultReporter, opts Options) http.Handler {
	return otelhttp.NewHandler(newMux(h, faults, opts), opts.TraceSegment)
}

func newMux(h *handler.Handler, faults *middleware.FaultReporter, opts Options) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(observability.MetricsMiddleware(opts.ServiceName))
	r.Use(middleware.Recovery(faults))
	if opts.RateLimitRequests > 0 {
		r.Use(middleware.RateLimit(opts.ServiceName, opts.RateLimitRequests, opts.RateLimitWindow))
	}

	r.Get("/health", observability.HealthLiveHandler)
	r.Get("/ready", observability.HealthReadyHandler())

	r.Get("/inventory", h.Wrap(h.Inventory))
	r.Get("/orders", h.Wrap(h.Orders))

	return r
}

// NewHealthRouter serves only the liveness and readiness probes.
func NewHealthRouter(faults *middleware.FaultReporter) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery(faults))

	r.Get("/health", observability.HealthLiveHandler)
	r.Get("/ready", observability.HealthReadyHandler())

	return r
}
