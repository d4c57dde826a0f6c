package memory

import (
	"context"
	"sync"

	"github.com/travelgo/travel-api/internal/core/domain"
)

// DestinationRepository is a mutex-guarded in-memory catalog store with the
// same optional snapshot mirroring as UserRepository.
type DestinationRepository struct {
	mu           sync.RWMutex
	destinations []domain.Destination
	snapshot     string
}

func NewDestinationRepository(snapshotPath string) (*DestinationRepository, error) {
	r := &DestinationRepository{snapshot: snapshotPath}

	if snapshotPath != "" {
		if err := loadSnapshot(snapshotPath, &r.destinations); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *DestinationRepository) List(_ context.Context) ([]domain.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing := make([]domain.Destination, len(r.destinations))
	copy(listing, r.destinations)
	return listing, nil
}

func (r *DestinationRepository) FindByID(_ context.Context, id string) (*domain.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.destinations {
		if d.ID == id {
			found := d
			return &found, nil
		}
	}
	return nil, domain.ErrDestinationNotFound
}

func (r *DestinationRepository) Create(_ context.Context, d *domain.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.destinations = append(r.destinations, *d)
	return r.flushLocked()
}

func (r *DestinationRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, d := range r.destinations {
		if d.ID == id {
			r.destinations = append(r.destinations[:i], r.destinations[i+1:]...)
			return r.flushLocked()
		}
	}
	return domain.ErrDestinationNotFound
}

func (r *DestinationRepository) flushLocked() error {
	if r.snapshot == "" {
		return nil
	}
	return writeSnapshot(r.snapshot, r.destinations)
}
