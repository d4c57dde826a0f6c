package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/travelgo/travel-api/internal/core/domain"
)

// RequireAdmin gates the catalog mutation routes on the Admin role claim.
// Any other verified role, recognized or not, is rejected. The catalog routes
// answer 401 here, not 403; the role-check endpoint owns the 403 path.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(RoleKey).(string)
			if role != domain.RoleAdmin {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Admin access required"})
			}
			return next(c)
		}
	}
}
