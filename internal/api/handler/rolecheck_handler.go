package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/travelgo/travel-api/internal/core/domain"
)

// Role-check response texts. The Admin/User distinction is carried in the
// message payload; both branches answer 200.
const (
	adminRoleMessage = "Authorized Admin. User can manage destinations like create, update, and delete."
	userRoleMessage  = "Unauthorized Admin. Administrator privileges are required to access this feature."
)

// RoleCheckHandler serves the generic role-check endpoint.
type RoleCheckHandler struct {
	logger zerolog.Logger
}

func NewRoleCheckHandler(logger zerolog.Logger) *RoleCheckHandler {
	return &RoleCheckHandler{logger: logger}
}

// Check reports whether the verified role grants admin capabilities.
//
// Admin and User both answer 200 with their respective message; every other
// role value is forbidden. An absent role claim is branched first for a clearer
// log line but degrades to the same 403 as an unrecognized role.
//
// @Summary      Check role-based access
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /auth [get]
func (h *RoleCheckHandler) Check(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if role == "" {
		h.logger.Debug().Msg("token carries no role claim")
		return c.JSON(http.StatusForbidden, errorResponse{Error: "Role not recognized"})
	}

	switch role {
	case domain.RoleAdmin:
		return c.JSON(http.StatusOK, messageResponse{Message: adminRoleMessage})
	case domain.RoleUser:
		return c.JSON(http.StatusOK, messageResponse{Message: userRoleMessage})
	default:
		h.logger.Debug().Str("role", role).Msg("unrecognized role claim")
		return c.JSON(http.StatusForbidden, errorResponse{Error: "Role not recognized"})
	}
}
