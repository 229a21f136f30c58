package api

import (
	"encoding/json"
	"net/http"
)

// writeJSONResponse writes a JSON response.
func writeJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, message, details string) {
	writeJSONResponse(w, status, ErrorResponse{Error: message, Details: details})
}
