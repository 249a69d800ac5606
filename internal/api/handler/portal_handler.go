package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/firmdesk/client-portal/internal/api/metrics"
	"github.com/firmdesk/client-portal/internal/core/ports"
)

// PortalHandler serves the client-facing area. Every endpoint resolves the
// caller's own client record from the gate's user id claim; clients can never
// name another client in a request.
type PortalHandler struct {
	users     ports.UserRepository
	clients   ports.ClientRepository
	catalog   ports.CatalogService
	documents ports.DocumentService
}

func NewPortalHandler(users ports.UserRepository, clients ports.ClientRepository, catalog ports.CatalogService, documents ports.DocumentService) *PortalHandler {
	return &PortalHandler{users: users, clients: clients, catalog: catalog, documents: documents}
}

type profileResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Organization string    `json:"organization,omitempty"`
	Email        string    `json:"email"`
	MemberSince  time.Time `json:"member_since"`
}

// ownClient resolves the authenticated user's client record.
func (h *PortalHandler) ownClient(c echo.Context) (string, error) {
	userID, err := ctxUserID(c)
	if err != nil {
		return "", err
	}
	client, err := h.clients.FindByUserID(c.Request().Context(), userID)
	if err != nil {
		return "", err
	}
	return client.ID, nil
}

// Profile handles GET /client/profile.
//
// @Summary      Get the authenticated client's profile
// @Tags         portal
// @Produce      json
// @Success      200  {object}  profileResponse
// @Failure      404  {object}  map[string]string
// @Router       /client/profile [get]
func (h *PortalHandler) Profile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	user, err := h.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	client, err := h.clients.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		ID:           client.ID,
		Name:         client.Name,
		Organization: client.Organization,
		Email:        user.Email,
		MemberSince:  client.CreatedAt,
	})
}

// Services handles GET /client/services — the caller's own assignments.
//
// @Summary      List the authenticated client's assigned services
// @Tags         portal
// @Produce      json
// @Success      200  {array}   assignmentResponse
// @Failure      404  {object}  map[string]string
// @Router       /client/services [get]
func (h *PortalHandler) Services(c echo.Context) error {
	clientID, err := h.ownClient(c)
	if err != nil {
		return err
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

// Documents handles GET /client/documents — the caller's own documents.
//
// @Summary      List the authenticated client's documents
// @Tags         portal
// @Produce      json
// @Success      200  {array}   domain.Document
// @Failure      404  {object}  map[string]string
// @Router       /client/documents [get]
func (h *PortalHandler) Documents(c echo.Context) error {
	clientID, err := h.ownClient(c)
	if err != nil {
		return err
	}

	docs, err := h.documents.ListByClient(c.Request().Context(), clientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Download handles GET /client/documents/:id/download. Ownership is enforced
// in the document service; a foreign document id gets 403 regardless of
// whether it exists.
//
// @Summary      Redirect to a signed download URL for an owned document
// @Tags         portal
// @Param        id   path  string  true  "Document id"
// @Success      302
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /client/documents/{id}/download [get]
func (h *PortalHandler) Download(c echo.Context) error {
	clientID, err := h.ownClient(c)
	if err != nil {
		return err
	}

	url, err := h.documents.DownloadLink(c.Request().Context(), c.Param("id"), clientID)
	if err != nil {
		return err
	}
	metrics.SignedURLsIssuedTotal.Inc()
	return c.Redirect(http.StatusFound, url)
}
