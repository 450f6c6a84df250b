package http

import (
	"encoding/json"
	"log"
	"net/http"

	"fintrack/internal/shared/apperr"
)

// All responses share the same envelope: a success flag, an optional
// human-readable message, and endpoint-specific payload fields.

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorEnvelope{Success: false, Message: message})
}

// developmentMode widens 500 responses to include the underlying cause.
// Production responses carry only the taxonomy message.
var developmentMode bool

// SetDevelopmentMode toggles error detail on 500 responses.
func SetDevelopmentMode(enabled bool) {
	developmentMode = enabled
}

// writeAppError maps a typed error to its HTTP status. The response body
// carries the client-safe taxonomy message only; wrapped causes (driver
// errors, table and constraint names) stay in the server log.
func writeAppError(w http.ResponseWriter, err error) {
	status := apperr.HTTPStatus(err)
	message := apperr.Message(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		if developmentMode {
			message = err.Error()
		}
	}
	writeError(w, status, message)
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
