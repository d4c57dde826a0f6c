package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/travelgo/travel-api/internal/core/domain"
	"github.com/travelgo/travel-api/internal/core/ports"
)

type stubDestinationRepo struct {
	destinations []domain.Destination
}

func (r *stubDestinationRepo) List(_ context.Context) ([]domain.Destination, error) {
	return append([]domain.Destination(nil), r.destinations...), nil
}

func (r *stubDestinationRepo) FindByID(_ context.Context, id string) (*domain.Destination, error) {
	for _, d := range r.destinations {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, domain.ErrDestinationNotFound
}

func (r *stubDestinationRepo) Create(_ context.Context, d *domain.Destination) error {
	r.destinations = append(r.destinations, *d)
	return nil
}

func (r *stubDestinationRepo) Delete(_ context.Context, id string) error {
	for i, d := range r.destinations {
		if d.ID == id {
			r.destinations = append(r.destinations[:i], r.destinations[i+1:]...)
			return nil
		}
	}
	return domain.ErrDestinationNotFound
}

type recordingCache struct {
	stored      []domain.Destination
	hasValue    bool
	invalidated int
}

func (c *recordingCache) Get(_ context.Context) ([]domain.Destination, bool) {
	if !c.hasValue {
		return nil, false
	}
	return c.stored, true
}

func (c *recordingCache) Set(_ context.Context, destinations []domain.Destination) {
	c.stored = destinations
	c.hasValue = true
}

func (c *recordingCache) Invalidate(_ context.Context) {
	c.stored = nil
	c.hasValue = false
	c.invalidated++
}

func validInput() ports.AddDestinationInput {
	return ports.AddDestinationInput{
		Name:          "Bali",
		Description:   "A tropical paradise",
		Location:      "Indonesia",
		PricePerNight: 200.5,
	}
}

func TestDestinationService_Add(t *testing.T) {
	repo := &stubDestinationRepo{}
	svc := NewDestinationService(repo, nil, zerolog.Nop())

	d, err := svc.Add(context.Background(), validInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if d.ID == "" {
		t.Fatalf("expected generated id")
	}
	if d.Name != "Bali" || d.PricePerNight != 200.5 {
		t.Fatalf("unexpected destination: %+v", d)
	}

	listing, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listing) != 1 || listing[0].ID != d.ID {
		t.Fatalf("expected added destination in listing, got %+v", listing)
	}
}

func TestDestinationService_Add_ValidationReasons(t *testing.T) {
	repo := &stubDestinationRepo{}
	svc := NewDestinationService(repo, nil, zerolog.Nop())

	cases := []struct {
		name   string
		mutate func(*ports.AddDestinationInput)
		reason string
	}{
		{"missing name", func(in *ports.AddDestinationInput) { in.Name = "" }, "Missing fields: name"},
		{"missing several", func(in *ports.AddDestinationInput) { in.Description = ""; in.PricePerNight = 0 }, "Missing fields: description, price_per_night"},
		{"short name", func(in *ports.AddDestinationInput) { in.Name = "Ba" }, "Destination name must be at least 3 characters long."},
		{"negative price", func(in *ports.AddDestinationInput) { in.PricePerNight = -10 }, "Price per night must be a positive number."},
	}

	for _, tc := range cases {
		input := validInput()
		tc.mutate(&input)

		_, err := svc.Add(context.Background(), input)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		if ve.Reason != tc.reason {
			t.Fatalf("%s: expected reason %q, got %q", tc.name, tc.reason, ve.Reason)
		}
		if len(repo.destinations) != 0 {
			t.Fatalf("%s: invalid input must not be stored", tc.name)
		}
	}
}

func TestDestinationService_Delete(t *testing.T) {
	repo := &stubDestinationRepo{}
	svc := NewDestinationService(repo, nil, zerolog.Nop())

	d, err := svc.Add(context.Background(), validInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.Delete(context.Background(), d.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), d.ID); !errors.Is(err, domain.ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}

func TestDestinationService_CacheReadThrough(t *testing.T) {
	repo := &stubDestinationRepo{}
	cache := &recordingCache{}
	svc := NewDestinationService(repo, cache, zerolog.Nop())

	// First list populates the cache from the repository.
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !cache.hasValue {
		t.Fatalf("expected cache to be populated")
	}

	// Mutations invalidate, so the next list sees fresh data.
	d, err := svc.Add(context.Background(), validInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected one invalidation after add, got %d", cache.invalidated)
	}

	listing, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listing) != 1 || listing[0].ID != d.ID {
		t.Fatalf("stale listing after mutation: %+v", listing)
	}

	if err := svc.Delete(context.Background(), d.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if cache.invalidated != 2 {
		t.Fatalf("expected invalidation after delete, got %d", cache.invalidated)
	}
}
