package server

import (
	"encoding/json"
	"io"
	"net/http"
)

// readJSON decodes a request body into dest. Unknown fields are rejected so
// a typoed key fails the request instead of silently defaulting.
func readJSON(body io.Reader, dest any) error {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError is the single error envelope; clients only ever see
// {"error": "..."} regardless of which layer failed.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}
