package domain

import "errors"

var (
	// ErrInvalidCredentials is returned for both unknown-email and wrong-password
	// logins. The two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrAdminRequired       = errors.New("admin access required")
	ErrRoleNotRecognized   = errors.New("role not recognized")
)

// ValidationError carries the human-readable reason for rejecting bad input.
// Reasons are distinguishable (missing field, invalid role, invalid price, ...)
// and surface verbatim in the HTTP response body.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
