package middleware

import (
	"encoding/json"
	"net/http"
)

// failure mirrors the REST envelope for responses produced by middleware.
type failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(failure{Message: message}) //nolint:errcheck
}
