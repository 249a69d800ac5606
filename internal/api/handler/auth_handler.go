package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/firmdesk/client-portal/internal/api/metrics"
	"github.com/firmdesk/client-portal/internal/api/middleware"
	"github.com/firmdesk/client-portal/internal/core/domain"
	"github.com/firmdesk/client-portal/internal/core/ports"
)

// AuthHandler owns the login/logout endpoints and the auth cookie. This is
// the only place the signed token touches request handling; it is never
// logged.
type AuthHandler struct {
	auth         ports.AuthService
	cookieTTL    time.Duration
	secureCookie bool
}

func NewAuthHandler(auth ports.AuthService, cookieTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieTTL: cookieTTL, secureCookie: secureCookie}
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=10"`
}

type loginUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Success bool       `json:"success"`
	User    *loginUser `json:"user,omitempty"`
}

// Login authenticates with email and phone and sets the auth cookie.
//
// @Summary      Log in with email and phone
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  loginResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tok, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Phone)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, loginResponse{Success: false})
		}
		return err
	}

	c.SetCookie(h.authCookie(tok, h.cookieTTL))
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		User: &loginUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}

// Logout clears the auth cookie.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  loginResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.authCookie("", -time.Second))
	return c.JSON(http.StatusOK, loginResponse{Success: true})
}

// LoginPage is the public terminal target of unauthenticated redirects.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "authentication required"})
}

// UnauthorizedPage is the terminal target of wrong-role redirects.
func (h *AuthHandler) UnauthorizedPage(c echo.Context) error {
	return c.JSON(http.StatusForbidden, map[string]string{"message": "unauthorized"})
}

// authCookie builds the auth_token cookie. Max-age always matches the token
// lifetime so the cookie and the token expire together.
func (h *AuthHandler) authCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
