package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mergington/activities/internal/model"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteMessage writes a confirmation message response
func WriteMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, model.MessageResponse{Message: message})
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	WriteJSON(w, err.Status, err)
}
