package handler

import (
	"fmt"
	"net/http"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/service"
)

// ActivityHandler handles activity endpoints
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// List handles GET /activities - return the full activity mapping
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.ListActivities(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, activities)
}

// Signup handles POST /activities/{name}/signup - register an email
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		WriteError(w, model.NewBadRequestError("activity name required"))
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		WriteError(w, model.NewBadRequestError("email query parameter required"))
		return
	}

	if err := h.activityService.Signup(r.Context(), name, email); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteMessage(w, fmt.Sprintf("Signed up %s for %s", email, name))
}

// Unregister handles DELETE /activities/{name}/unregister - remove an email
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		WriteError(w, model.NewBadRequestError("activity name required"))
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		WriteError(w, model.NewBadRequestError("email query parameter required"))
		return
	}

	if err := h.activityService.Unregister(r.Context(), name, email); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteMessage(w, fmt.Sprintf("Unregistered %s from %s", email, name))
}
