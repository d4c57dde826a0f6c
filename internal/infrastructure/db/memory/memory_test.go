package memory

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/travelgo/travel-api/internal/core/domain"
)

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo, err := NewUserRepository("")
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	ctx := context.Background()

	identity := &domain.Identity{Name: "Ana", Email: "ana@x.com", PasswordHash: "h", Role: domain.RoleUser}
	if err := repo.Create(ctx, identity); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if err := repo.Create(ctx, identity); !errors.Is(err, domain.ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered, got %v", err)
	}
}

func TestUserRepository_ConcurrentCreateSameEmail(t *testing.T) {
	repo, err := NewUserRepository("")
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	ctx := context.Background()

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.Create(ctx, &domain.Identity{
				Name: "Ana", Email: "race@x.com", PasswordHash: "h", Role: domain.RoleUser,
			})
		}()
	}
	wg.Wait()
	close(results)

	var successes int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrEmailRegistered):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one successful create, got %d", successes)
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo, err := NewUserRepository("")
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "ghost@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	want := &domain.Identity{Name: "Ana", Email: "ana@x.com", PasswordHash: "hash", Role: domain.RoleAdmin}
	if err := repo.Create(ctx, want); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.FindByEmail(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if *got != *want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestUserRepository_SnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	ctx := context.Background()

	repo, err := NewUserRepository(path)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	if err := repo.Create(ctx, &domain.Identity{Name: "Ana", Email: "ana@x.com", PasswordHash: "hash", Role: domain.RoleUser}); err != nil {
		t.Fatalf("create: %v", err)
	}

	reloaded, err := NewUserRepository(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, err := reloaded.FindByEmail(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("find after reload: %v", err)
	}
	if got.PasswordHash != "hash" || got.Role != domain.RoleUser {
		t.Fatalf("reloaded identity mismatch: %+v", got)
	}
}

func TestDestinationRepository_CreateListDelete(t *testing.T) {
	repo, err := NewDestinationRepository("")
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	ctx := context.Background()

	d := &domain.Destination{ID: "d1", Name: "Cartagena", Description: "Walled city", Location: "Colombia", PricePerNight: 120}
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("create: %v", err)
	}

	listing, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listing) != 1 || listing[0].ID != "d1" {
		t.Fatalf("unexpected listing: %+v", listing)
	}

	// The listing is a copy; mutating it must not leak into the store.
	listing[0].Name = "changed"
	if found, err := repo.FindByID(ctx, "d1"); err != nil || found.Name != "Cartagena" {
		t.Fatalf("store mutated through listing: %+v, %v", found, err)
	}

	if err := repo.Delete(ctx, "d1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "d1"); !errors.Is(err, domain.ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
	if _, err := repo.FindByID(ctx, "d1"); !errors.Is(err, domain.ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}

func TestDestinationRepository_SnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "destinations.json")
	ctx := context.Background()

	repo, err := NewDestinationRepository(path)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	if err := repo.Create(ctx, &domain.Destination{ID: "d1", Name: "Cartagena", Description: "x", Location: "Colombia", PricePerNight: 120}); err != nil {
		t.Fatalf("create: %v", err)
	}

	reloaded, err := NewDestinationRepository(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	found, err := reloaded.FindByID(ctx, "d1")
	if err != nil {
		t.Fatalf("find after reload: %v", err)
	}
	if found.PricePerNight != 120 {
		t.Fatalf("reloaded destination mismatch: %+v", found)
	}
}
