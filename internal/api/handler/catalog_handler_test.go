package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/firmdesk/client-portal/internal/core/domain"
	"github.com/firmdesk/client-portal/internal/core/ports"
)

// stubCatalog fulfils ports.CatalogService with canned results; individual
// tests override the fields they care about.
type stubCatalog struct {
	syncErr   error
	syncCalls int
	services  []*domain.Service
}

func (s *stubCatalog) CreateService(_ context.Context, name, description string) (*domain.Service, error) {
	return &domain.Service{ID: "svc1", Name: name, Description: description, Active: true}, nil
}

func (s *stubCatalog) UpdateService(_ context.Context, id string, name, description *string, active *bool) (*domain.Service, error) {
	return &domain.Service{ID: id}, nil
}

func (s *stubCatalog) DeleteService(context.Context, string) error { return nil }

func (s *stubCatalog) ListServices(context.Context, bool) ([]*domain.Service, error) {
	return s.services, nil
}

func (s *stubCatalog) CreateSubService(_ context.Context, serviceID, name string) (*domain.SubService, error) {
	return &domain.SubService{ID: "sub1", ServiceID: serviceID, Name: name, Active: true}, nil
}

func (s *stubCatalog) UpdateSubService(_ context.Context, id string, name *string, active *bool) (*domain.SubService, error) {
	return &domain.SubService{ID: id}, nil
}

func (s *stubCatalog) DeactivateSubService(context.Context, string) error { return nil }

func (s *stubCatalog) ListSubServices(context.Context, string) ([]*domain.SubService, error) {
	return nil, nil
}

func (s *stubCatalog) ListAllSubServices(context.Context) ([]ports.SubServiceView, error) {
	return nil, nil
}

func (s *stubCatalog) Assign(_ context.Context, clientID, serviceID, subServiceID string) (*domain.ClientService, error) {
	return &domain.ClientService{ID: "a1", ClientID: clientID, ServiceID: serviceID, SubServiceID: subServiceID}, nil
}

func (s *stubCatalog) Unassign(context.Context, string) error { return nil }

func (s *stubCatalog) ListAssignments(context.Context, string) ([]ports.AssignmentView, error) {
	return nil, nil
}

func (s *stubCatalog) SyncClients(context.Context, string) error {
	s.syncCalls++
	return s.syncErr
}

func TestCatalogHandler_SyncClients_Success(t *testing.T) {
	catalog := &stubCatalog{}
	h := NewCatalogHandler(catalog)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/services/svc1/sync-clients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("svc1")

	if err := h.SyncClients(c); err != nil {
		t.Fatalf("sync handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if catalog.syncCalls != 1 {
		t.Fatalf("expected one sync call, got %d", catalog.syncCalls)
	}
}

func TestCatalogHandler_SyncClients_Busy(t *testing.T) {
	catalog := &stubCatalog{syncErr: domain.ErrSyncInProgress}
	h := NewCatalogHandler(catalog)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/services/svc1/sync-clients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("svc1")

	// The handler surfaces the error; the central error handler maps it to 409.
	if err := h.SyncClients(c); err != domain.ErrSyncInProgress {
		t.Fatalf("expected ErrSyncInProgress to propagate, got %v", err)
	}
}

func TestCatalogHandler_ListAssignments_RequiresClientID(t *testing.T) {
	h := NewCatalogHandler(&stubCatalog{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/client-services", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListAssignments(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCatalogHandler_CreateService_Validation(t *testing.T) {
	h := NewCatalogHandler(&stubCatalog{})

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/admin/services", strings.NewReader(`{"name":"ab"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateService(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short name, got %v", err)
	}
}
