package helpers

import (
	"encoding/json"
	"net/http"
)

// APIError is the body of every non-2xx response.
// swagger:model APIError
type APIError struct {
	Detail string `json:"detail"`
}

// MessageResponse is the body of a successful mutation.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONMessage writes {"message": message}.
func WriteJSONMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteJSONError writes {"detail": detail}.
func WriteJSONError(w http.ResponseWriter, statusCode int, detail string) {
	WriteJSON(w, statusCode, APIError{Detail: detail})
}
