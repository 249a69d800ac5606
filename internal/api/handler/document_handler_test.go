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

type stubDocuments struct {
	url         string
	linkErr     error
	requesterID string
	deleteRes   ports.DeleteDocumentResult
}

func (s *stubDocuments) Upload(_ context.Context, in ports.UploadDocumentInput) (*domain.Document, error) {
	return &domain.Document{ID: "doc1", ClientID: in.ClientID, FileName: in.FileName}, nil
}

func (s *stubDocuments) ListByClient(context.Context, string) ([]*domain.Document, error) {
	return nil, nil
}

func (s *stubDocuments) DownloadLink(_ context.Context, _, requesterClientID string) (string, error) {
	s.requesterID = requesterClientID
	if s.linkErr != nil {
		return "", s.linkErr
	}
	return s.url, nil
}

func (s *stubDocuments) Delete(context.Context, string) (ports.DeleteDocumentResult, error) {
	return s.deleteRes, nil
}

func downloadContext(path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("doc1")
	return c, rec
}

func TestDocumentHandler_Download_Redirects(t *testing.T) {
	docs := &stubDocuments{url: "https://blobs.test/client1/sub1/1-a.pdf"}
	h := NewDocumentHandler(docs)

	c, rec := downloadContext("/admin/documents/doc1/download")
	if err := h.Download(c); err != nil {
		t.Fatalf("download handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != docs.url {
		t.Fatalf("redirect target %s, want %s", loc, docs.url)
	}
	// Admin downloads carry no ownership restriction.
	if docs.requesterID != "" {
		t.Fatalf("admin download passed a requester id: %s", docs.requesterID)
	}
}

func TestDocumentHandler_Download_NotFound(t *testing.T) {
	docs := &stubDocuments{linkErr: domain.ErrDocumentNotFound}
	h := NewDocumentHandler(docs)

	c, _ := downloadContext("/admin/documents/doc1/download")
	if err := h.Download(c); err != domain.ErrDocumentNotFound {
		t.Fatalf("expected ErrDocumentNotFound to propagate, got %v", err)
	}
}

func TestDocumentHandler_Upload_MissingFields(t *testing.T) {
	h := NewDocumentHandler(&stubDocuments{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/documents", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Upload(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without form fields, got %v", err)
	}
}

func TestDocumentHandler_Delete_ReportsPartial(t *testing.T) {
	docs := &stubDocuments{deleteRes: ports.DeleteDocumentResult{BlobDeleted: false}}
	h := NewDocumentHandler(docs)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/admin/documents/doc1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("doc1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, `"blob_deleted":false`) {
		t.Fatalf("partial delete not reported: %s", body)
	}
}
