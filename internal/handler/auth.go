package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mergington/activities/internal/middleware"
	"github.com/mergington/activities/internal/service"
)

// AuthHandler handles admin login and logout endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginRequest is the login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the login response body. The token is returned for
// non-browser clients; browsers rely on the cookie.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Login handles POST /admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "username and password required")
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	middleware.SetSessionCookie(w, token)
	RespondWithJSON(w, r, http.StatusOK, LoginResponse{Message: "logged in", Token: token})
}

// Logout handles POST /admin/logout. Logging out without a valid session
// still succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout(r.Context(), middleware.TokenFromRequest(r))
	middleware.ClearSessionCookie(w)
	RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "logged out"})
}
