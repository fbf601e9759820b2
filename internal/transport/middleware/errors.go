package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody matches the error payload written by the rest handlers.
type errorBody struct {
	Error           string `json:"error"`
	RedirectToLogin bool   `json:"redirectToLogin,omitempty"`
}

func writeError(w http.ResponseWriter, status int, body errorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
