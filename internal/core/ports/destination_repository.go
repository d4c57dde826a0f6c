package ports

import (
	"context"

	"github.com/travelgo/travel-api/internal/core/domain"
)

// DestinationRepository defines persistence for catalog entries.
type DestinationRepository interface {
	List(ctx context.Context) ([]domain.Destination, error)
	// FindByID returns the destination with the given id, or
	// domain.ErrDestinationNotFound.
	FindByID(ctx context.Context, id string) (*domain.Destination, error)
	Create(ctx context.Context, d *domain.Destination) error
	// Delete removes the destination with the given id. Returns
	// domain.ErrDestinationNotFound when no such entry exists.
	Delete(ctx context.Context, id string) error
}

// CatalogCache is an optional read-through cache for the public destination
// listing. Implementations must treat a miss and an unavailable backend the
// same way: Get returns ok=false and the caller falls through to the repository.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Destination, bool)
	Set(ctx context.Context, destinations []domain.Destination)
	Invalidate(ctx context.Context)
}
