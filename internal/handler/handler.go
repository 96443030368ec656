package handler

import (
	"net/http"
	"time"

	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/metrics"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/middleware"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/transport"
)

// Func is a route that may fail. A returned error is answered by the fault
// reporter.
type Func func(w http.ResponseWriter, r *http.Request) error

type Handler struct {
	products int
	emitter  *metrics.Emitter
	faults   *middleware.FaultReporter
}

func New(products int, emitter *metrics.Emitter, faults *middleware.FaultReporter) *Handler {
	return &Handler{
		products: products,
		emitter:  emitter,
		faults:   faults,
	}
}

// Wrap adapts fn to http.HandlerFunc.
func (h *Handler) Wrap(fn Func) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.faults.Report(w, r, err)
		}
	}
}

type inventoryResponse struct {
	Products int `json:"products"`
}

type ordersResponse struct {
	Orders int `json:"orders"`
}

func (h *Handler) Inventory(w http.ResponseWriter, r *http.Request) error {
	return transport.WriteJSON(w, http.StatusOK, inventoryResponse{Products: h.products})
}

// Orders always reports zero orders. The volume and latency samples are
// emitted after the response is written and never affect it.
func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) error {
	start := time.Now()

	if err := transport.WriteJSON(w, http.StatusOK, ordersResponse{Orders: 0}); err != nil {
		return err
	}

	h.emitter.Emit(r.Context(),
		metrics.Count(metrics.OrdersPerMinute, 1),
		metrics.Milliseconds(metrics.OrderLatency, time.Since(start)),
	)
	return nil
}
