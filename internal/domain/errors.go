package domain

import "errors"

// Domain errors surfaced to API clients as HTTP status + message.
var (
	// ErrActivityNotFound is returned when the named activity does not exist
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadySignedUp is returned when the email is already on the roster
	ErrAlreadySignedUp = errors.New("student is already signed up")

	// ErrNotSignedUp is returned when the email is not on the roster
	ErrNotSignedUp = errors.New("student is not signed up for this activity")

	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is returned when no valid session token accompanies the request
	ErrUnauthenticated = errors.New("admin authentication required")
)

// ErrorCode identifies an API error category in response bodies
type ErrorCode string

// Error codes carried in the error response envelope
const (
	CodeNotFound           ErrorCode = "NOT_FOUND"           // Activity does not exist
	CodeAlreadySignedUp    ErrorCode = "ALREADY_SIGNED_UP"   // Email already on roster
	CodeNotSignedUp        ErrorCode = "NOT_SIGNED_UP"       // Email not on roster
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS" // Wrong username or password
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"        // Missing or invalid session token
	CodeBadRequest         ErrorCode = "BAD_REQUEST"         // Malformed or incomplete request
)

// MapErrorToCode converts domain errors to API error codes
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return CodeNotFound
	case errors.Is(err, ErrAlreadySignedUp):
		return CodeAlreadySignedUp
	case errors.Is(err, ErrNotSignedUp):
		return CodeNotSignedUp
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthorized
	default:
		return CodeBadRequest
	}
}
