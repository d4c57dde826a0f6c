package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/travelgo/travel-api/internal/api/middleware"
)

// ctxClaims extracts the claims injected by the access guard and performs a
// fast-fail check before any service call: a non-empty subject proves the
// guard ran. The role may legitimately be any string, including empty;
// per-route policy decides what to do with it.
func ctxClaims(c echo.Context) (subject, role string, err error) {
	subject, _ = c.Get(middleware.SubjectKey).(string)
	if subject == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ = c.Get(middleware.RoleKey).(string)
	return subject, role, nil
}
