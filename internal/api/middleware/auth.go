package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/travelgo/travel-api/internal/api/metrics"
	"github.com/travelgo/travel-api/internal/core/token"
)

// Context keys under which the guard stores verified claims.
const (
	ClaimsKey  = "claims"
	SubjectKey = "subject"
	RoleKey    = "role"
)

// Response texts for guard rejections. These are part of the API contract.
const (
	msgMissingToken = "Missing or invalid JWT token."
	msgInvalidToken = "Invalid token format or signature."
	msgExpiredToken = "Token expired"
)

// Guard enforces the bearer-token contract on every protected route: the
// Authorization header must be present, shaped as "Bearer <token>", and the
// token must decode with a valid signature and unexpired claims. On success the
// verified claims are attached to the request context; the guard performs no
// storage I/O.
//
// Failure mapping: absent header → 401, malformed header or token → 422,
// bad signature → 422, expired → 401.
func Guard(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.GuardDecisionsTotal.WithLabelValues("missing_token").Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": msgMissingToken})
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.GuardDecisionsTotal.WithLabelValues("malformed").Inc()
				return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": msgInvalidToken})
			}

			claims, err := codec.Decode(parts[1])
			if err != nil {
				switch {
				case errors.Is(err, token.ErrExpired):
					metrics.GuardDecisionsTotal.WithLabelValues("expired").Inc()
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": msgExpiredToken})
				case errors.Is(err, token.ErrBadSignature):
					metrics.GuardDecisionsTotal.WithLabelValues("bad_signature").Inc()
					return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": msgInvalidToken})
				default:
					metrics.GuardDecisionsTotal.WithLabelValues("malformed").Inc()
					return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": msgInvalidToken})
				}
			}

			metrics.GuardDecisionsTotal.WithLabelValues("allowed").Inc()
			c.Set(ClaimsKey, claims)
			c.Set(SubjectKey, claims.Subject)
			c.Set(RoleKey, claims.Role)

			return next(c)
		}
	}
}
