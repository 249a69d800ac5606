package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/firmdesk/client-portal/internal/api/metrics"
	"github.com/firmdesk/client-portal/internal/core/domain"
	"github.com/firmdesk/client-portal/internal/core/token"
)

// CookieName is the auth cookie carrying the signed session token.
const CookieName = "auth_token"

const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
	adminPrefix      = "/admin"
	clientPrefix     = "/client"
)

// Context keys populated by the gate for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Gate is the single chokepoint every request passes before business logic.
// Decision order, each step terminal:
//
//  1. login/unauthorized pages are public.
//  2. the site root redirects to login.
//  3. no auth cookie: redirect to login.
//  4. invalid/expired token: redirect to login — indistinguishable from
//     "not logged in" on purpose.
//  5. admin area without ADMIN, or client area without CLIENT: redirect to
//     unauthorized.
//  6. otherwise pass through with the verified claims in context.
//
// The gate is stateless and re-evaluates on every request; it never extends
// a token's lifetime.
func Gate(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			if isPublicPath(path) {
				return next(c)
			}
			if path == "/" {
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}

			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				metrics.GateRedirectsTotal.WithLabelValues("login").Inc()
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				metrics.GateRedirectsTotal.WithLabelValues("login").Inc()
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}

			if strings.HasPrefix(path, adminPrefix) && claims.Role != domain.RoleAdmin {
				metrics.GateRedirectsTotal.WithLabelValues("unauthorized").Inc()
				return c.Redirect(http.StatusSeeOther, UnauthorizedPath)
			}
			if strings.HasPrefix(path, clientPrefix) && claims.Role != domain.RoleClient {
				metrics.GateRedirectsTotal.WithLabelValues("unauthorized").Inc()
				return c.Redirect(http.StatusSeeOther, UnauthorizedPath)
			}

			c.Set(CtxUserID, claims.Subject)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}

// isPublicPath reports whether the path bypasses authentication entirely.
func isPublicPath(path string) bool {
	switch path {
	case LoginPath, UnauthorizedPath, "/logout", "/health", "/health/ready", "/metrics":
		return true
	}
	return strings.HasPrefix(path, "/swagger")
}
