package ports

import "context"

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// ProfileResult is the identity view returned to an authenticated caller.
type ProfileResult struct {
	Name  string
	Email string
	Role  string
}

// UserService defines the registration and login use cases.
type UserService interface {
	// Register validates input and stores a new identity. Fails with a
	// *domain.ValidationError (missing field, invalid role) or
	// domain.ErrEmailRegistered.
	Register(ctx context.Context, input RegisterInput) error
	// Login verifies credentials and mints a bearer token. Unknown email and
	// wrong password both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	// Profile returns the stored identity for a verified subject.
	Profile(ctx context.Context, email string) (*ProfileResult, error)
}
