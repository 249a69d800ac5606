package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/firmdesk/client-portal/internal/core/domain"
	"github.com/firmdesk/client-portal/internal/core/ports"
)

// legacyKeyPrefix existed in an older upload path. Reads tolerate it; writes
// never produce it.
const legacyKeyPrefix = "documents/"

// DocumentService brokers uploads, listings, signed downloads and deletes.
type DocumentService struct {
	documents   ports.DocumentRepository
	clients     ports.ClientRepository
	subServices ports.SubServiceRepository
	blobs       ports.BlobStore
	log         zerolog.Logger
}

func NewDocumentService(
	documents ports.DocumentRepository,
	clients ports.ClientRepository,
	subServices ports.SubServiceRepository,
	blobs ports.BlobStore,
	log zerolog.Logger,
) *DocumentService {
	return &DocumentService{
		documents:   documents,
		clients:     clients,
		subServices: subServices,
		blobs:       blobs,
		log:         log,
	}
}

// Upload stores the blob under the canonical key and creates the metadata
// record pointing at it. The blob is written first so a failure leaves no
// record referencing missing bytes.
func (s *DocumentService) Upload(ctx context.Context, in ports.UploadDocumentInput) (*domain.Document, error) {
	if _, err := s.clients.FindByID(ctx, in.ClientID); err != nil {
		return nil, err
	}
	if _, err := s.subServices.FindByID(ctx, in.SubServiceID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	key := storageKey(in.ClientID, in.SubServiceID, in.FileName, now)

	if err := s.blobs.Put(ctx, key, in.Body, in.Size, in.ContentType); err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	doc, err := s.documents.Create(ctx, &domain.Document{
		ID:           uuid.NewString(),
		ClientID:     in.ClientID,
		SubServiceID: in.SubServiceID,
		FileName:     in.FileName,
		StorageKey:   key,
		CreatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("document_id", doc.ID).Str("client_id", in.ClientID).Str("storage_key", key).Msg("document uploaded")
	return doc, nil
}

func (s *DocumentService) ListByClient(ctx context.Context, clientID string) ([]*domain.Document, error) {
	return s.documents.ListByClient(ctx, clientID)
}

// DownloadLink exchanges a document id for a short-lived signed URL. A
// non-empty requesterClientID restricts access to the owning client.
func (s *DocumentService) DownloadLink(ctx context.Context, id, requesterClientID string) (string, error) {
	doc, err := s.documents.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if requesterClientID != "" && doc.ClientID != requesterClientID {
		return "", domain.ErrForbidden
	}
	return s.blobs.PresignGet(ctx, normalizeStorageKey(doc.StorageKey), doc.FileName)
}

// Delete removes the blob first and the record second. A failed blob delete
// is logged and does not abort: a stale blob is recoverable by an operator,
// a stale record pointing at deleted bytes is not. The result marks the
// partial case so callers can report it distinctly.
func (s *DocumentService) Delete(ctx context.Context, id string) (ports.DeleteDocumentResult, error) {
	doc, err := s.documents.FindByID(ctx, id)
	if err != nil {
		return ports.DeleteDocumentResult{}, err
	}

	result := ports.DeleteDocumentResult{BlobDeleted: true}
	if err := s.blobs.Delete(ctx, normalizeStorageKey(doc.StorageKey)); err != nil {
		result.BlobDeleted = false
		s.log.Error().Err(err).Str("document_id", id).Str("storage_key", doc.StorageKey).Msg("blob delete failed, removing record anyway")
	}

	if err := s.documents.Delete(ctx, id); err != nil {
		return result, err
	}
	return result, nil
}

// storageKey builds the one canonical blob key:
// {clientID}/{subServiceID}/{unix}-{basename}.
func storageKey(clientID, subServiceID, fileName string, now time.Time) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	return fmt.Sprintf("%s/%s/%d-%s", clientID, subServiceID, now.Unix(), base)
}

// normalizeStorageKey cleans up keys written by older upload paths: leading
// slashes and the legacy "documents/" prefix.
func normalizeStorageKey(key string) string {
	key = strings.TrimLeft(key, "/")
	key = strings.TrimPrefix(key, legacyKeyPrefix)
	return key
}
