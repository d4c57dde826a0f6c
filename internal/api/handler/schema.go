package handler

import "github.com/travelgo/travel-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for plain success messages.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth request / response types ---

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type profileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// --- Catalog request / response types ---

type addDestinationRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
}

type destinationsResponse struct {
	Destinations []domain.Destination `json:"destinations"`
}

type addDestinationResponse struct {
	Message     string              `json:"message"`
	Destination *domain.Destination `json:"destination"`
}
