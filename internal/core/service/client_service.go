package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/firmdesk/client-portal/internal/core/domain"
	"github.com/firmdesk/client-portal/internal/core/ports"
)

// ClientManager implements client onboarding, lookup and cascading removal.
type ClientManager struct {
	users       ports.UserRepository
	clients     ports.ClientRepository
	services    ports.ServiceRepository
	subServices ports.SubServiceRepository
	assignments ports.AssignmentRepository
	documents   ports.DocumentRepository
	blobs       ports.BlobStore
	log         zerolog.Logger
}

func NewClientManager(
	users ports.UserRepository,
	clients ports.ClientRepository,
	services ports.ServiceRepository,
	subServices ports.SubServiceRepository,
	assignments ports.AssignmentRepository,
	documents ports.DocumentRepository,
	blobs ports.BlobStore,
	log zerolog.Logger,
) *ClientManager {
	return &ClientManager{
		users:       users,
		clients:     clients,
		services:    services,
		subServices: subServices,
		assignments: assignments,
		documents:   documents,
		blobs:       blobs,
		log:         log,
	}
}

// Onboard creates the login identity and the client profile, then performs
// the initial service assignment. The email must be unused; a duplicate
// surfaces as domain.ErrUserExists.
func (m *ClientManager) Onboard(ctx context.Context, in ports.OnboardClientInput) (*domain.Client, error) {
	if _, err := m.services.FindByID(ctx, in.ServiceID); err != nil {
		return nil, err
	}

	phone := domain.NormalizePhone(in.Phone)
	hash, err := HashPhone(phone)
	if err != nil {
		return nil, fmt.Errorf("hash phone: %w", err)
	}

	now := time.Now().UTC()
	user, err := m.users.Create(ctx, &domain.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     domain.NormalizeEmail(in.Email),
		Phone:     phone,
		PhoneHash: hash,
		Role:      domain.RoleClient,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	client, err := m.clients.Create(ctx, &domain.Client{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Organization: in.Organization,
		UserID:       user.ID,
		CreatedAt:    now,
	})
	if err != nil {
		// The user row is orphaned without its client; undo it so the email
		// can be retried.
		if delErr := m.users.Delete(ctx, user.ID); delErr != nil {
			m.log.Error().Err(delErr).Str("user_id", user.ID).Msg("failed to undo user after client create failure")
		}
		return nil, err
	}

	if err := m.assignInitial(ctx, client.ID, in.ServiceID, in.SubServiceID, now); err != nil {
		return nil, err
	}

	m.log.Info().Str("client_id", client.ID).Str("email", user.Email).Msg("client onboarded")
	return client, nil
}

// assignInitial applies the onboarding assignment rules: an explicitly chosen
// sub-service wins; otherwise fan out over the service's active sub-services;
// a service with none gets a single service-level row.
func (m *ClientManager) assignInitial(ctx context.Context, clientID, serviceID, subServiceID string, now time.Time) error {
	if subServiceID != "" {
		_, err := m.assignments.Create(ctx, &domain.ClientService{
			ID:           uuid.NewString(),
			ClientID:     clientID,
			ServiceID:    serviceID,
			SubServiceID: subServiceID,
			CreatedAt:    now,
		})
		return err
	}

	subs, err := m.subServices.ListByService(ctx, serviceID, true)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		_, err := m.assignments.Create(ctx, &domain.ClientService{
			ID:        uuid.NewString(),
			ClientID:  clientID,
			ServiceID: serviceID,
			CreatedAt: now,
		})
		return err
	}

	rows := make([]*domain.ClientService, 0, len(subs))
	for _, sub := range subs {
		rows = append(rows, &domain.ClientService{
			ID:           uuid.NewString(),
			ClientID:     clientID,
			ServiceID:    serviceID,
			SubServiceID: sub.ID,
			CreatedAt:    now,
		})
	}
	return m.assignments.CreateMany(ctx, rows)
}

// Get returns one client joined with its login state and assignments.
func (m *ClientManager) Get(ctx context.Context, id string) (*ports.ClientDetail, error) {
	client, err := m.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail, err := m.buildDetail(ctx, client)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// List returns all clients with login state and assignments.
func (m *ClientManager) List(ctx context.Context) ([]ports.ClientDetail, error) {
	clients, err := m.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]ports.ClientDetail, 0, len(clients))
	for _, c := range clients {
		d, err := m.buildDetail(ctx, c)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

func (m *ClientManager) buildDetail(ctx context.Context, client *domain.Client) (*ports.ClientDetail, error) {
	user, err := m.users.FindByID(ctx, client.UserID)
	if err != nil {
		return nil, err
	}
	views, err := assignmentViews(ctx, m.assignments, m.services, m.subServices, client.ID)
	if err != nil {
		return nil, err
	}
	return &ports.ClientDetail{
		Client:      *client,
		Email:       user.Email,
		Active:      user.Active,
		Assignments: views,
	}, nil
}

// Delete removes a client and everything it owns. The order is fixed by the
// referential dependencies: documents first, then assignments, then the
// client, then its user. Each step is idempotent, so a failed delete can be
// retried safely. Blob removal is best effort.
func (m *ClientManager) Delete(ctx context.Context, id string) error {
	client, err := m.clients.FindByID(ctx, id)
	if err != nil {
		return err
	}

	docs, err := m.documents.ListByClient(ctx, id)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if err := m.blobs.Delete(ctx, doc.StorageKey); err != nil {
			m.log.Warn().Err(err).Str("storage_key", doc.StorageKey).Msg("blob delete failed during client removal")
		}
		if err := m.documents.Delete(ctx, doc.ID); err != nil {
			return fmt.Errorf("delete client documents: %w", err)
		}
	}

	if err := m.assignments.DeleteByClient(ctx, id); err != nil {
		return fmt.Errorf("delete client assignments: %w", err)
	}
	if err := m.clients.Delete(ctx, id); err != nil {
		return err
	}
	if err := m.users.Delete(ctx, client.UserID); err != nil {
		return fmt.Errorf("delete client user: %w", err)
	}

	m.log.Info().Str("client_id", id).Int("documents", len(docs)).Msg("client deleted")
	return nil
}
