package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/travelgo/travel-api/internal/api/metrics"
	"github.com/travelgo/travel-api/internal/core/domain"
	"github.com/travelgo/travel-api/internal/core/ports"
)

// DestinationService implements the catalog use cases. The cache is optional;
// a nil cache disables read-through caching entirely.
type DestinationService struct {
	repo   ports.DestinationRepository
	cache  ports.CatalogCache
	logger zerolog.Logger
}

func NewDestinationService(repo ports.DestinationRepository, cache ports.CatalogCache, logger zerolog.Logger) *DestinationService {
	return &DestinationService{repo: repo, cache: cache, logger: logger}
}

func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	destinations, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if destinations == nil {
		destinations = []domain.Destination{}
	}

	if s.cache != nil {
		s.cache.Set(ctx, destinations)
	}
	return destinations, nil
}

func (s *DestinationService) Add(ctx context.Context, input ports.AddDestinationInput) (*domain.Destination, error) {
	if err := validateDestination(input); err != nil {
		metrics.DestinationMutationsTotal.WithLabelValues("add", "invalid_input").Inc()
		return nil, err
	}

	destination := &domain.Destination{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Description:   input.Description,
		Location:      input.Location,
		PricePerNight: input.PricePerNight,
	}

	if err := s.repo.Create(ctx, destination); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	metrics.DestinationMutationsTotal.WithLabelValues("add", "success").Inc()
	s.logger.Info().Str("id", destination.ID).Str("name", destination.Name).Msg("destination added")
	return destination, nil
}

func (s *DestinationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrDestinationNotFound) {
			metrics.DestinationMutationsTotal.WithLabelValues("delete", "not_found").Inc()
		}
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	metrics.DestinationMutationsTotal.WithLabelValues("delete", "success").Inc()
	s.logger.Info().Str("id", id).Msg("destination deleted")
	return nil
}

// validateDestination mirrors the catalog input contract: all fields present,
// name at least three characters, price strictly positive.
func validateDestination(input ports.AddDestinationInput) error {
	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Description == "" {
		missing = append(missing, "description")
	}
	if input.Location == "" {
		missing = append(missing, "location")
	}
	if input.PricePerNight == 0 {
		missing = append(missing, "price_per_night")
	}
	if len(missing) > 0 {
		return domain.NewValidationError(fmt.Sprintf("Missing fields: %s", strings.Join(missing, ", ")))
	}

	if len(input.Name) < 3 {
		return domain.NewValidationError("Destination name must be at least 3 characters long.")
	}
	if input.PricePerNight <= 0 {
		return domain.NewValidationError("Price per night must be a positive number.")
	}
	return nil
}
