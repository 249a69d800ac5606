package ports

import (
	"context"
	"io"

	"github.com/firmdesk/client-portal/internal/core/domain"
)

// DocumentRepository defines persistence for document metadata.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	FindByID(ctx context.Context, id string) (*domain.Document, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Document, error)
	Delete(ctx context.Context, id string) error
}

// BlobStore is the opaque key-value file store behind documents.
type BlobStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	// PresignGet mints a short-lived retrieval URL for the key, forcing the
	// given filename via content-disposition.
	PresignGet(ctx context.Context, key, filename string) (string, error)
}

// UploadDocumentInput carries one multipart upload.
type UploadDocumentInput struct {
	ClientID     string
	SubServiceID string
	FileName     string
	ContentType  string
	Size         int64
	Body         io.Reader
}

// DeleteDocumentResult reports the outcome of a document delete. BlobDeleted
// is false on partial failure: the metadata record is gone but the blob may
// still exist and needs operator reconciliation.
type DeleteDocumentResult struct {
	BlobDeleted bool
}

// DocumentService brokers document uploads, listings and access.
type DocumentService interface {
	Upload(ctx context.Context, in UploadDocumentInput) (*domain.Document, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Document, error)
	// DownloadLink exchanges a document id for a time-limited signed URL.
	// When requesterClientID is non-empty, the document must belong to that
	// client or domain.ErrForbidden is returned.
	DownloadLink(ctx context.Context, id, requesterClientID string) (string, error)
	Delete(ctx context.Context, id string) (DeleteDocumentResult, error)
}
