package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/observability"
)

// WriteJSON encodes payload before touching w, so an encoding error leaves
// the response unwritten and the caller free to answer with a fault.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		observability.Log.Debug("failed to write response", zap.Error(err))
	}
	return nil
}

func WriteText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// WriteInternalError is the only error body the service ever returns.
func WriteInternalError(w http.ResponseWriter) {
	WriteText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
