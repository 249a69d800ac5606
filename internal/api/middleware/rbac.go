package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole is a defense-in-depth check behind the Gate: route groups
// assert the exact role they expect even though the gate already mapped the
// area prefix to it. A mismatch here means a routing mistake, not a user
// error, and returns 403 rather than redirecting.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
