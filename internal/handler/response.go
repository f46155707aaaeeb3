package handler

import (
	"net/http"

	"github.com/go-chi/render"
)

// MessageResponse is the body of simple success responses
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondWithJSON sends a JSON response with the given status code
func RespondWithJSON(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	render.Status(r, statusCode)
	render.JSON(w, r, data)
}
