package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/firmdesk/client-portal/internal/core/ports"
)

// ClientHandler exposes the admin client-management endpoints.
type ClientHandler struct {
	clients ports.ClientManager
}

func NewClientHandler(clients ports.ClientManager) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type createClientRequest struct {
	Name         string `json:"name"          validate:"required"`
	Organization string `json:"organization"`
	Email        string `json:"email"         validate:"required,email"`
	Phone        string `json:"phone"         validate:"required,min=10"`
	ServiceID    string `json:"service_id"    validate:"required"`
	SubServiceID string `json:"sub_service_id"`
}

type assignmentResponse struct {
	ID             string `json:"id"`
	ServiceID      string `json:"service_id"`
	ServiceName    string `json:"service_name"`
	SubServiceID   string `json:"sub_service_id,omitempty"`
	SubServiceName string `json:"sub_service_name,omitempty"`
}

type clientResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Organization string               `json:"organization,omitempty"`
	Email        string               `json:"email"`
	Active       bool                 `json:"active"`
	CreatedAt    time.Time            `json:"created_at"`
	Assignments  []assignmentResponse `json:"assignments"`
}

// List handles GET /admin/clients.
//
// @Summary      List all clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}  clientResponse
// @Router       /admin/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	details, err := h.clients.List(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]clientResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, toClientResponse(d))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /admin/clients — onboarding.
//
// @Summary      Onboard a new client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.clients.Onboard(c.Request().Context(), ports.OnboardClientInput{
		Name:         req.Name,
		Organization: req.Organization,
		Email:        req.Email,
		Phone:        req.Phone,
		ServiceID:    req.ServiceID,
		SubServiceID: req.SubServiceID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// Get handles GET /admin/clients/:id.
//
// @Summary      Get one client with assignments
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  map[string]string
// @Router       /admin/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	detail, err := h.clients.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(*detail))
}

// Delete handles DELETE /admin/clients/:id — the ordered cascade.
//
// @Summary      Delete a client and everything it owns
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /admin/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.clients.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func toClientResponse(d ports.ClientDetail) clientResponse {
	assignments := make([]assignmentResponse, 0, len(d.Assignments))
	for _, a := range d.Assignments {
		assignments = append(assignments, assignmentResponse{
			ID:             a.ID,
			ServiceID:      a.ServiceID,
			ServiceName:    a.ServiceName,
			SubServiceID:   a.SubServiceID,
			SubServiceName: a.SubServiceName,
		})
	}
	return clientResponse{
		ID:           d.Client.ID,
		Name:         d.Client.Name,
		Organization: d.Client.Organization,
		Email:        d.Email,
		Active:       d.Active,
		CreatedAt:    d.Client.CreatedAt,
		Assignments:  assignments,
	}
}
