// Package error defines domain-specific errors for the Fleet Manager application.
package error

import "errors"

// Authentication and user domain errors.
var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when registering with an email already in use.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUserInactive is returned when a deactivated user attempts to log in.
	ErrUserInactive = errors.New("user account is deactivated")

	// ErrAdminRequired is returned when a non-admin attempts an admin-only operation.
	ErrAdminRequired = errors.New("admin role required")

	// ErrInvalidToken is returned when an access token fails validation.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010001"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-010003"
	ErrCodeAdminRequired      AuthErrorCode = "AUTH-010004"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-010005"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020001"
	ErrCodeEmailAlreadyExists AuthErrorCode = "AUTH-020002"
	ErrCodeUserInactive       AuthErrorCode = "AUTH-020003"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewInvalidTokenError creates an AuthError for a token that failed validation.
func NewInvalidTokenError(err error) *AuthError {
	return NewAuthError(ErrCodeInvalidToken, "invalid or expired token", err)
}
