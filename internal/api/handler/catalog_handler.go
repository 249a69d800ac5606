package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/firmdesk/client-portal/internal/api/metrics"
	"github.com/firmdesk/client-portal/internal/core/domain"
	"github.com/firmdesk/client-portal/internal/core/ports"
)

// CatalogHandler exposes the admin catalog endpoints: services, sub-services,
// client assignments and the sync engine.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type createServiceRequest struct {
	Name        string `json:"name" validate:"required,min=3"`
	Description string `json:"description"`
}

type updateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

type createSubServiceRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
	Name      string `json:"name"       validate:"required,min=3"`
}

type updateSubServiceRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type assignRequest struct {
	ClientID     string `json:"client_id"  validate:"required"`
	ServiceID    string `json:"service_id" validate:"required"`
	SubServiceID string `json:"sub_service_id"`
}

type subServiceView struct {
	ID          string `json:"id"`
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	Name        string `json:"name"`
	Active      bool   `json:"active"`
}

// ListServices handles GET /admin/services. ?active=true narrows to active
// services.
//
// @Summary      List services
// @Tags         catalog
// @Produce      json
// @Param        active  query     bool  false  "Only active services"
// @Success      200     {array}   domain.Service
// @Router       /admin/services [get]
func (h *CatalogHandler) ListServices(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"
	services, err := h.catalog.ListServices(c.Request().Context(), activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// CreateService handles POST /admin/services.
//
// @Summary      Create a service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      createServiceRequest  true  "Service"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  map[string]string
// @Router       /admin/services [post]
func (h *CatalogHandler) CreateService(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.catalog.CreateService(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// UpdateService handles PUT /admin/services/:id. Omitted fields keep their
// current value.
//
// @Summary      Update a service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Service id"
// @Param        body  body      updateServiceRequest  true  "Fields to change"
// @Success      200   {object}  domain.Service
// @Failure      404   {object}  map[string]string
// @Router       /admin/services/{id} [put]
func (h *CatalogHandler) UpdateService(c echo.Context) error {
	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	svc, err := h.catalog.UpdateService(c.Request().Context(), c.Param("id"), req.Name, req.Description, req.Active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// DeleteService handles DELETE /admin/services/:id. This is the hard delete:
// the service, its sub-services and every assignment referencing it go away.
//
// @Summary      Delete a service
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /admin/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	if err := h.catalog.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// SyncClients handles POST /admin/services/:id/sync-clients.
//
// @Summary      Re-fan-out assignments for a service's clients
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/services/{id}/sync-clients [post]
func (h *CatalogHandler) SyncClients(c echo.Context) error {
	err := h.catalog.SyncClients(c.Request().Context(), c.Param("id"))
	switch {
	case err == nil:
		metrics.SyncRunsTotal.WithLabelValues("ok").Inc()
	case errors.Is(err, domain.ErrSyncInProgress):
		metrics.SyncRunsTotal.WithLabelValues("busy").Inc()
	case errors.Is(err, domain.ErrServiceNotFound):
		// Not a run at all; leave the counter alone.
	default:
		metrics.SyncRunsTotal.WithLabelValues("error").Inc()
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// ListSubServices handles GET /admin/services/:id/subservices.
//
// @Summary      List a service's sub-services
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {array}   domain.SubService
// @Failure      404  {object}  map[string]string
// @Router       /admin/services/{id}/subservices [get]
func (h *CatalogHandler) ListSubServices(c echo.Context) error {
	subs, err := h.catalog.ListSubServices(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subs)
}

// ListAllSubServices handles GET /admin/subservices — every sub-service with
// its parent service name, for the catalog overview.
//
// @Summary      List all sub-services across services
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  subServiceView
// @Router       /admin/subservices [get]
func (h *CatalogHandler) ListAllSubServices(c echo.Context) error {
	views, err := h.catalog.ListAllSubServices(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]subServiceView, 0, len(views))
	for _, v := range views {
		resp = append(resp, subServiceView{
			ID:          v.SubService.ID,
			ServiceID:   v.SubService.ServiceID,
			ServiceName: v.ServiceName,
			Name:        v.SubService.Name,
			Active:      v.SubService.Active,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateSubService handles POST /admin/subservices.
//
// @Summary      Create a sub-service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      createSubServiceRequest  true  "Sub-service"
// @Success      201   {object}  domain.SubService
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/subservices [post]
func (h *CatalogHandler) CreateSubService(c echo.Context) error {
	var req createSubServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.catalog.CreateSubService(c.Request().Context(), req.ServiceID, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sub)
}

// UpdateSubService handles PUT /admin/subservices/:id.
//
// @Summary      Update a sub-service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Sub-service id"
// @Param        body  body      updateSubServiceRequest  true  "Fields to change"
// @Success      200   {object}  domain.SubService
// @Failure      404   {object}  map[string]string
// @Router       /admin/subservices/{id} [put]
func (h *CatalogHandler) UpdateSubService(c echo.Context) error {
	var req updateSubServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sub, err := h.catalog.UpdateSubService(c.Request().Context(), c.Param("id"), req.Name, req.Active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sub)
}

// DeactivateSubService handles DELETE /admin/subservices/:id. Soft delete:
// documents referencing the sub-service stay resolvable.
//
// @Summary      Deactivate a sub-service
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Sub-service id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /admin/subservices/{id} [delete]
func (h *CatalogHandler) DeactivateSubService(c echo.Context) error {
	if err := h.catalog.DeactivateSubService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Assign handles POST /admin/client-services.
//
// @Summary      Assign a service (or sub-service) to a client
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      assignRequest  true  "Assignment"
// @Success      201   {object}  domain.ClientService
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/client-services [post]
func (h *CatalogHandler) Assign(c echo.Context) error {
	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cs, err := h.catalog.Assign(c.Request().Context(), req.ClientID, req.ServiceID, req.SubServiceID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cs)
}

// ListAssignments handles GET /admin/client-services?client_id=...
//
// @Summary      List a client's assignments
// @Tags         catalog
// @Produce      json
// @Param        client_id  query     string  true  "Client id"
// @Success      200        {array}   assignmentResponse
// @Failure      400        {object}  map[string]string
// @Router       /admin/client-services [get]
func (h *CatalogHandler) ListAssignments(c echo.Context) error {
	clientID := c.QueryParam("client_id")
	if clientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "client_id is required")
	}

	views, err := h.catalog.ListAssignments(c.Request().Context(), clientID)
	if err != nil {
		return err
	}
	resp := make([]assignmentResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, assignmentResponse{
			ID:             v.ID,
			ServiceID:      v.ServiceID,
			ServiceName:    v.ServiceName,
			SubServiceID:   v.SubServiceID,
			SubServiceName: v.SubServiceName,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Unassign handles DELETE /admin/client-services/:id.
//
// @Summary      Remove one assignment
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Assignment id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /admin/client-services/{id} [delete]
func (h *CatalogHandler) Unassign(c echo.Context) error {
	if err := h.catalog.Unassign(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
