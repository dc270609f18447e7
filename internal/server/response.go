package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// response is the standard API envelope. Error carries a single
// client-facing message; internals are logged, never returned.
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// writeJSON writes a success envelope.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response{Success: true, Data: data}); err != nil {
		zap.L().Warn("server: encoding response failed", zap.Error(err))
	}
}

// writeError writes a failure envelope with a single message.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response{Success: false, Error: message}); err != nil {
		zap.L().Warn("server: encoding response failed", zap.Error(err))
	}
}

// decodeJSON decodes a request body, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
