package ports

import (
	"context"

	"github.com/travelgo/travel-api/internal/core/domain"
)

// AddDestinationInput carries the payload for creating a catalog entry.
type AddDestinationInput struct {
	Name          string
	Description   string
	Location      string
	PricePerNight float64
}

// DestinationService defines the catalog use cases. Role gating for the
// mutating operations is enforced at the route layer; the service validates
// payloads and owns the read-modify-write sequences.
type DestinationService interface {
	List(ctx context.Context) ([]domain.Destination, error)
	// Add validates input and stores a new destination. Fails with a
	// *domain.ValidationError on missing fields, a name shorter than three
	// characters, or a non-positive price.
	Add(ctx context.Context, input AddDestinationInput) (*domain.Destination, error)
	// Delete removes a destination by id, failing with
	// domain.ErrDestinationNotFound for an unknown id.
	Delete(ctx context.Context, id string) error
}
