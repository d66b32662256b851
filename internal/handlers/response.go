package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body of every error reply. Kind names the failure
// class (for example "division_by_zero") when one is known.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// WriteError writes a standardised JSON error response.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteErrorKind(w, status, msg, "")
}

// WriteErrorKind writes a standardised JSON error response carrying kind.
func WriteErrorKind(w http.ResponseWriter, status int, msg, kind string) {
	WriteJSON(w, status, ErrorResponse{Error: msg, Kind: kind})
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
