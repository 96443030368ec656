package observability

import (
	"net/http"
)

// HealthLiveHandler reports process liveness only.
func HealthLiveHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// HealthReadyHandler reports that the process accepts traffic. It must not
// consult the metrics or tracing sinks.
func HealthReadyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Ready"))
	}
}
