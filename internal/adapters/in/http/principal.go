package http

import (
	"net/http"
	"slices"

	"orderdispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Headers set by the trusted gateway in front of the service.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	principalKey = "principal"
)

// Authenticate reads the principal from the gateway headers. Requests
// without them continue anonymously; malformed headers are rejected.
func Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawID := c.Request().Header.Get(HeaderUserID)
		rawRole := c.Request().Header.Get(HeaderUserRole)
		if rawID == "" && rawRole == "" {
			return next(c)
		}

		userID, err := kernel.UUIDFromString(rawID)
		if err != nil {
			return errorJSON(c, http.StatusUnauthorized, "Invalid user identity")
		}
		role, err := kernel.ParseRole(rawRole)
		if err != nil {
			return errorJSON(c, http.StatusUnauthorized, "Invalid user role")
		}

		c.Set(principalKey, kernel.Principal{UserID: userID, Role: role})
		return next(c)
	}
}

// RequireRole rejects anonymous requests with 401 and, when roles are given,
// principals holding none of them with 403. Admins pass every check.
func RequireRole(roles ...kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
			}
			if len(roles) > 0 && !p.IsAdmin() && !slices.Contains(roles, p.Role) {
				return errorJSON(c, http.StatusForbidden, "Forbidden")
			}
			return next(c)
		}
	}
}

func PrincipalFrom(c echo.Context) (kernel.Principal, bool) {
	p, ok := c.Get(principalKey).(kernel.Principal)
	return p, ok
}

// optionalPrincipal returns nil for anonymous requests.
func optionalPrincipal(c echo.Context) *kernel.Principal {
	if p, ok := PrincipalFrom(c); ok {
		return &p
	}
	return nil
}
