package handler

import (
	"errors"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrActivityNotFound):
		// Exact casing is part of the wire contract.
		return model.NewNotFoundError("Activity not found")

	// ===== Signup-state Errors → 400 =====
	case errors.Is(err, service.ErrAlreadySignedUp),
		errors.Is(err, service.ErrNotSignedUp):
		return model.NewConflictError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
