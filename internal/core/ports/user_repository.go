package ports

import (
	"context"

	"github.com/travelgo/travel-api/internal/core/domain"
)

// UserRepository defines persistence for identity records. The store owns the
// records exclusively: create and lookup only, no in-place mutation.
type UserRepository interface {
	// FindByEmail returns the identity for email, or domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	// Create stores a new identity. Returns domain.ErrEmailRegistered when the
	// email is already present; the check and insert are atomic.
	Create(ctx context.Context, identity *domain.Identity) error
}
