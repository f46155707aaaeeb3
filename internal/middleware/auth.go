package middleware

import (
	"context"
	"net/http"

	"github.com/mergington/activities/internal/service"
)

// ContextKey is a custom type for context keys
type ContextKey string

const (
	// UsernameKey is the context key for the authenticated teacher's username
	UsernameKey ContextKey = "username"
)

const (
	// CookieName is the session cookie set on login for browser clients
	CookieName = "admin_token"
	// HeaderName is the fallback token header for non-browser clients
	HeaderName = "X-Admin-Token"
)

// TokenFromRequest extracts the session token, preferring the cookie and
// falling back to the header
func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.Header.Get(HeaderName)
}

// SetSessionCookie stores the token as an http-only, same-site-lax cookie
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// RequireTeacher creates middleware guarding teacher-only endpoints. It runs
// before any handler validation, so an unauthenticated caller gets 401 even
// when the requested activity does not exist.
func RequireTeacher(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				unauthorized(w)
				return
			}

			username, err := authService.Resolve(r.Context(), token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), UsernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"Admin authentication required"}}`))
}

// GetUsernameFromContext extracts the authenticated username from the context
func GetUsernameFromContext(ctx context.Context) string {
	username, ok := ctx.Value(UsernameKey).(string)
	if !ok {
		return ""
	}
	return username
}
