package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/firmdesk/client-portal/internal/api/metrics"
	"github.com/firmdesk/client-portal/internal/core/ports"
)

// DocumentHandler exposes the admin document endpoints. The handler never
// serves file bytes itself; downloads redirect to a short-lived signed URL.
type DocumentHandler struct {
	documents ports.DocumentService
}

func NewDocumentHandler(documents ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// Upload handles POST /admin/documents (multipart form: file, client_id,
// sub_service_id).
//
// @Summary      Upload a document for a client
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file            formData  file    true  "Document file"
// @Param        client_id       formData  string  true  "Client id"
// @Param        sub_service_id  formData  string  true  "Sub-service id"
// @Success      201  {object}  domain.Document
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/documents [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	clientID := c.FormValue("client_id")
	subServiceID := c.FormValue("sub_service_id")
	if clientID == "" || subServiceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "client_id and sub_service_id are required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	defer src.Close()

	doc, err := h.documents.Upload(c.Request().Context(), ports.UploadDocumentInput{
		ClientID:     clientID,
		SubServiceID: subServiceID,
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Body:         src,
	})
	if err != nil {
		return err
	}

	metrics.DocumentsUploadedTotal.Inc()
	return c.JSON(http.StatusCreated, doc)
}

// List handles GET /admin/documents?client_id=...
//
// @Summary      List a client's documents
// @Tags         documents
// @Produce      json
// @Param        client_id  query     string  true  "Client id"
// @Success      200        {array}   domain.Document
// @Failure      400        {object}  map[string]string
// @Router       /admin/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	clientID := c.QueryParam("client_id")
	if clientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "client_id is required")
	}

	docs, err := h.documents.ListByClient(c.Request().Context(), clientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Download handles GET /admin/documents/:id/download. Admins can reach any
// client's documents, so no ownership restriction applies here.
//
// @Summary      Redirect to a signed download URL
// @Tags         documents
// @Param        id   path  string  true  "Document id"
// @Success      302
// @Failure      404  {object}  map[string]string
// @Router       /admin/documents/{id}/download [get]
func (h *DocumentHandler) Download(c echo.Context) error {
	url, err := h.documents.DownloadLink(c.Request().Context(), c.Param("id"), "")
	if err != nil {
		return err
	}
	metrics.SignedURLsIssuedTotal.Inc()
	return c.Redirect(http.StatusFound, url)
}

// Delete handles DELETE /admin/documents/:id. A partial result means the
// metadata is gone but the blob delete failed; the response says so.
//
// @Summary      Delete a document
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Document id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /admin/documents/{id} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	result, err := h.documents.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	if result.BlobDeleted {
		metrics.DocumentsDeletedTotal.WithLabelValues("ok").Inc()
	} else {
		metrics.DocumentsDeletedTotal.WithLabelValues("partial").Inc()
	}
	return c.JSON(http.StatusOK, map[string]bool{
		"success":      true,
		"blob_deleted": result.BlobDeleted,
	})
}
