package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mergington/activities/internal/service"
)

// ActivityHandler handles activity catalog and roster endpoints
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// List handles GET /activities
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.List(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, activities)
}

// Signup handles POST /activities/{name}/signup?email=...
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	activityName := activityNameParam(r)
	email := r.URL.Query().Get("email")
	if email == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "email query parameter is required")
		return
	}

	if err := h.activityService.Signup(r.Context(), activityName, email); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	})
}

// Unregister handles DELETE /activities/{name}/unregister?email=...
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	activityName := activityNameParam(r)
	email := r.URL.Query().Get("email")
	if email == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "email query parameter is required")
		return
	}

	if err := h.activityService.Unregister(r.Context(), activityName, email); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
	})
}

// activityNameParam returns the decoded {name} path segment. Activity names
// contain spaces, so the segment arrives percent-encoded.
func activityNameParam(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
