package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/travelgo/travel-api/internal/core/domain"
	"github.com/travelgo/travel-api/internal/core/ports"
)

// DestinationHandler serves the travel catalog endpoints.
type DestinationHandler struct {
	catalog ports.DestinationService
}

func NewDestinationHandler(catalog ports.DestinationService) *DestinationHandler {
	return &DestinationHandler{catalog: catalog}
}

// List returns every destination. The listing is public.
//
// @Summary      List all destinations
// @Tags         destinations
// @Produce      json
// @Success      200  {object}  destinationsResponse
// @Router       /destinations [get]
func (h *DestinationHandler) List(c echo.Context) error {
	destinations, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, destinationsResponse{Destinations: destinations})
}

// Add creates a new destination. Admin only.
//
// @Summary      Add a new destination
// @Tags         destinations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addDestinationRequest  true  "Destination details"
// @Success      201   {object}  addDestinationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /addDestinations [post]
func (h *DestinationHandler) Add(c echo.Context) error {
	var req addDestinationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	destination, err := h.catalog.Add(c.Request().Context(), ports.AddDestinationInput{
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Reason})
		}
		return err
	}

	return c.JSON(http.StatusCreated, addDestinationResponse{
		Message:     "Destination added successfully",
		Destination: destination,
	})
}

// Delete removes a destination by id. Admin only.
//
// @Summary      Delete a destination
// @Tags         destinations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Destination ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /destinations/{id} [delete]
func (h *DestinationHandler) Delete(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrDestinationNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Destination not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Destination deleted successfully"})
}
