package http

import (
	"encoding/json"
	"net/http"
	"time"
)

// Envelope is the uniform body of every API response.
type Envelope struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data"`
	Error     *ErrorBody `json:"error"`
	Timestamp string     `json:"timestamp"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

var now = time.Now

func timestamp() string {
	return now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// WriteJSON writes data wrapped in a success envelope.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, &Envelope{
		Success:   true,
		Data:      data,
		Timestamp: timestamp(),
	})
}

// WriteError writes a failure envelope.
func WriteError(w http.ResponseWriter, status int, code, message string, details map[string]any) {
	writeEnvelope(w, status, &Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: timestamp(),
	})
}

func writeEnvelope(w http.ResponseWriter, status int, env *Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
