package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/firmdesk/client-portal/internal/api/middleware"
)

// ctxUserID extracts the verified user id injected by the authorization
// gate. Its presence proves the gate ran; a handler reached without it is a
// routing mistake and fails closed.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
