package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the API error envelope. status is the machine-readable
// code and is omitted when empty.
func writeError(w http.ResponseWriter, httpStatus int, status, message string) {
	body := map[string]any{"success": false, "error": message}
	if status != "" {
		body["status"] = status
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}
