package handler

import (
	"encoding/json"
	"net/http"

	"pdf-text-extractor/internal/domain"
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

// GetRequestIDFromContext returns the request ID set by the request middleware
func GetRequestIDFromContext(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(requestIDContextKey).(string)
	return id, ok
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// writeResult writes an extraction result
func writeResult(w http.ResponseWriter, statusCode int, result domain.Result) {
	writeJSON(w, statusCode, result)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
