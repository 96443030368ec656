package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/metrics"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/observability"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/transport"
)

// FaultReporter is the single fallback for anything a route could not
// handle. Each call counts as one faulting request.
type FaultReporter struct {
	serviceName string
	emitter     *metrics.Emitter
}

func NewFaultReporter(serviceName string, emitter *metrics.Emitter) *FaultReporter {
	return &FaultReporter{serviceName: serviceName, emitter: emitter}
}

// Report logs cause, attempts one Errors5xx sample and answers 500.
func (f *FaultReporter) Report(w http.ResponseWriter, r *http.Request, cause any) {
	ctx := r.Context()

	observability.GetLogger(ctx).Error("request_fault",
		zap.Any("error", cause),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	observability.HttpFaultsTotal.WithLabelValues(f.serviceName).Inc()

	f.emitter.Emit(ctx, metrics.Count(metrics.Errors5xx, 1))

	transport.WriteInternalError(w)
}
