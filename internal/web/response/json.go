// Package response renders the service's JSON payloads and error bodies.
package response

import (
	"encoding/json"
	"net/http"
)

// RenderJSON writes a JSON payload with the given status code.
func RenderJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}
