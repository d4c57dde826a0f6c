package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/travelgo/travel-api/internal/api/metrics"
	"github.com/travelgo/travel-api/internal/core/domain"
	"github.com/travelgo/travel-api/internal/core/ports"
	"github.com/travelgo/travel-api/internal/core/token"
)

// UserService implements registration, login and profile lookup.
type UserService struct {
	repo   ports.UserRepository
	codec  *token.Codec
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, codec *token.Codec, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, codec: codec, logger: logger}
}

func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) error {
	if err := validateRegistration(input); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid_input").Inc()
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	identity := &domain.Identity{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
	}

	if err := s.repo.Create(ctx, identity); err != nil {
		if errors.Is(err, domain.ErrEmailRegistered) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate_email").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", input.Email).Str("role", input.Role).Msg("user registered")
	return nil
}

// Login verifies credentials and mints a token whose subject is the email and
// whose role claim is the stored role. Unknown email and wrong password are
// collapsed into the same error so callers cannot enumerate accounts.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" {
		metrics.LoginsTotal.WithLabelValues("invalid_input").Inc()
		return "", domain.NewValidationError("Email is required.")
	}
	if password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid_input").Inc()
		return "", domain.NewValidationError("Password is required.")
	}

	identity, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.codec.Encode(identity.Email, identity.Role)
	if err != nil {
		return "", fmt.Errorf("encode token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", email).Msg("user logged in")
	return signed, nil
}

func (s *UserService) Profile(ctx context.Context, email string) (*ports.ProfileResult, error) {
	identity, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &ports.ProfileResult{
		Name:  identity.Name,
		Email: identity.Email,
		Role:  identity.Role,
	}, nil
}

// validateRegistration checks the four required fields in the order the API
// documents them and reports the first violation.
func validateRegistration(input ports.RegisterInput) error {
	if input.Name == "" {
		return domain.NewValidationError("Name is required.")
	}
	if input.Email == "" {
		return domain.NewValidationError("Email is required.")
	}
	if input.Password == "" {
		return domain.NewValidationError("Password is required.")
	}
	if !domain.ValidRole(input.Role) {
		return domain.NewValidationError("Role must be 'Admin' or 'User'.")
	}
	return nil
}
