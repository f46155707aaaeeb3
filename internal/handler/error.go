package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/mergington/activities/internal/domain"
)

// ErrorResponse is the error envelope returned on every failure
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the error code and a human-readable message
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondWithError sends an error response
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		RespondWithError(w, r, http.StatusNotFound, string(domain.CodeNotFound), "Activity not found")
	case errors.Is(err, domain.ErrAlreadySignedUp):
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeAlreadySignedUp), "Student is already signed up")
	case errors.Is(err, domain.ErrNotSignedUp):
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeNotSignedUp), "Student is not signed up for this activity")
	case errors.Is(err, domain.ErrInvalidCredentials):
		RespondWithError(w, r, http.StatusUnauthorized, string(domain.CodeInvalidCredentials), "invalid credentials")
	case errors.Is(err, domain.ErrUnauthenticated):
		RespondWithError(w, r, http.StatusUnauthorized, string(domain.CodeUnauthorized), "Admin authentication required")
	default:
		RespondWithError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
