package memory

import (
	"context"
	"sync"

	"github.com/travelgo/travel-api/internal/core/domain"
)

// storedUser is the snapshot form of an identity. It carries the password hash
// explicitly because domain.Identity hides it from JSON.
type storedUser struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Role         string `json:"role"`
}

// UserRepository is a mutex-guarded in-memory identity store. The mutex
// serializes the duplicate check and insert in Create, so two concurrent
// registrations with the same email cannot both succeed.
type UserRepository struct {
	mu       sync.RWMutex
	users    map[string]storedUser
	snapshot string // empty disables file mirroring
}

// NewUserRepository creates the store, loading the snapshot file when a path
// is given.
func NewUserRepository(snapshotPath string) (*UserRepository, error) {
	r := &UserRepository{
		users:    make(map[string]storedUser),
		snapshot: snapshotPath,
	}

	if snapshotPath != "" {
		var listing []storedUser
		if err := loadSnapshot(snapshotPath, &listing); err != nil {
			return nil, err
		}
		for _, u := range listing {
			r.users[u.Email] = u
		}
	}
	return r, nil
}

func (r *UserRepository) Create(_ context.Context, identity *domain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[identity.Email]; exists {
		return domain.ErrEmailRegistered
	}

	r.users[identity.Email] = storedUser{
		Name:         identity.Name,
		Email:        identity.Email,
		PasswordHash: identity.PasswordHash,
		Role:         identity.Role,
	}
	return r.flushLocked()
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &domain.Identity{
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
	}, nil
}

func (r *UserRepository) flushLocked() error {
	if r.snapshot == "" {
		return nil
	}
	listing := make([]storedUser, 0, len(r.users))
	for _, u := range r.users {
		listing = append(listing, u)
	}
	return writeSnapshot(r.snapshot, listing)
}
