package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/observability"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/transport"
)

// RateLimit caps requests per client IP within window. A rejected request
// is logged and counted, then answered with a plain 429.
func RateLimit(serviceName string, requests int, window time.Duration) func(next http.Handler) http.Handler {
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			observability.GetLogger(r.Context()).Warn("rate_limited",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
			)
			observability.HttpRateLimitedTotal.WithLabelValues(serviceName).Inc()

			transport.WriteText(w, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
		}),
	)
}
