package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/firmdesk/client-portal/internal/core/domain"
	"github.com/firmdesk/client-portal/internal/core/service"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrAssignmentExists, http.StatusConflict},
		{domain.ErrSyncInProgress, http.StatusConflict},
		{service.ErrNameTooShort, http.StatusBadRequest},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrClientNotFound, http.StatusNotFound},
		{domain.ErrServiceNotFound, http.StatusNotFound},
		{domain.ErrSubServiceNotFound, http.StatusNotFound},
		{domain.ErrAssignmentNotFound, http.StatusNotFound},
		{domain.ErrDocumentNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		rec := handleError(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	rec := handleError(t, fmt.Errorf("sync svc1: %w", domain.ErrSyncInProgress))
	if rec.Code != http.StatusConflict {
		t.Fatalf("wrapped error lost its mapping: %d", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec := handleError(t, errors.New("pq: connection refused at 10.0.0.5"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"error":"operation failed"}`+"\n" {
		t.Fatalf("internal detail leaked: %s", body)
	}
}
