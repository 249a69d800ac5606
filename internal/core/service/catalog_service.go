package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/firmdesk/client-portal/internal/core/domain"
	"github.com/firmdesk/client-portal/internal/core/ports"
)

// minNameLen applies to service and sub-service names.
const minNameLen = 3

// CatalogService manages the service/sub-service catalog and keeps client
// assignments consistent with it.
type CatalogService struct {
	services    ports.ServiceRepository
	subServices ports.SubServiceRepository
	assignments ports.AssignmentRepository
	locker      ports.SyncLocker
	log         zerolog.Logger
}

func NewCatalogService(
	services ports.ServiceRepository,
	subServices ports.SubServiceRepository,
	assignments ports.AssignmentRepository,
	locker ports.SyncLocker,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		services:    services,
		subServices: subServices,
		assignments: assignments,
		locker:      locker,
		log:         log,
	}
}

// ErrNameTooShort is a boundary validation failure, surfaced as a 400.
var ErrNameTooShort = fmt.Errorf("name must be at least %d characters", minNameLen)

func (s *CatalogService) CreateService(ctx context.Context, name, description string) (*domain.Service, error) {
	name = strings.TrimSpace(name)
	if len(name) < minNameLen {
		return nil, ErrNameTooShort
	}
	return s.services.Create(ctx, &domain.Service{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	})
}

func (s *CatalogService) UpdateService(ctx context.Context, id string, name, description *string, active *bool) (*domain.Service, error) {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if len(trimmed) < minNameLen {
			return nil, ErrNameTooShort
		}
		svc.Name = trimmed
	}
	if description != nil {
		svc.Description = *description
	}
	if active != nil {
		svc.Active = *active
	}
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteService hard-deletes the service and its sub-services, children
// first. Assignments referencing the service are removed as well so no edge
// dangles.
func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	if _, err := s.services.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.assignments.DeleteByService(ctx, id); err != nil {
		return fmt.Errorf("delete service assignments: %w", err)
	}
	if err := s.subServices.DeleteByService(ctx, id); err != nil {
		return fmt.Errorf("delete sub-services: %w", err)
	}
	return s.services.Delete(ctx, id)
}

func (s *CatalogService) ListServices(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	return s.services.List(ctx, activeOnly)
}

func (s *CatalogService) CreateSubService(ctx context.Context, serviceID, name string) (*domain.SubService, error) {
	name = strings.TrimSpace(name)
	if len(name) < minNameLen {
		return nil, ErrNameTooShort
	}
	if _, err := s.services.FindByID(ctx, serviceID); err != nil {
		return nil, err
	}
	return s.subServices.Create(ctx, &domain.SubService{
		ID:        uuid.NewString(),
		ServiceID: serviceID,
		Name:      name,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *CatalogService) UpdateSubService(ctx context.Context, id string, name *string, active *bool) (*domain.SubService, error) {
	sub, err := s.subServices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if len(trimmed) < minNameLen {
			return nil, ErrNameTooShort
		}
		sub.Name = trimmed
	}
	if active != nil {
		sub.Active = *active
	}
	if err := s.subServices.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// DeactivateSubService soft-deletes: documents already filed under the
// sub-service keep a resolvable reference, and listings filter it out.
func (s *CatalogService) DeactivateSubService(ctx context.Context, id string) error {
	sub, err := s.subServices.FindByID(ctx, id)
	if err != nil {
		return err
	}
	sub.Active = false
	return s.subServices.Update(ctx, sub)
}

func (s *CatalogService) ListSubServices(ctx context.Context, serviceID string) ([]*domain.SubService, error) {
	return s.subServices.ListByService(ctx, serviceID, true)
}

func (s *CatalogService) ListAllSubServices(ctx context.Context) ([]ports.SubServiceView, error) {
	subs, err := s.subServices.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.services.List(ctx, false)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(services))
	for _, svc := range services {
		names[svc.ID] = svc.Name
	}
	views := make([]ports.SubServiceView, 0, len(subs))
	for _, sub := range subs {
		views = append(views, ports.SubServiceView{SubService: *sub, ServiceName: names[sub.ServiceID]})
	}
	return views, nil
}

func (s *CatalogService) Assign(ctx context.Context, clientID, serviceID, subServiceID string) (*domain.ClientService, error) {
	if _, err := s.services.FindByID(ctx, serviceID); err != nil {
		return nil, err
	}
	if subServiceID != "" {
		if _, err := s.subServices.FindByID(ctx, subServiceID); err != nil {
			return nil, err
		}
	}
	return s.assignments.Create(ctx, &domain.ClientService{
		ID:           uuid.NewString(),
		ClientID:     clientID,
		ServiceID:    serviceID,
		SubServiceID: subServiceID,
		CreatedAt:    time.Now().UTC(),
	})
}

func (s *CatalogService) Unassign(ctx context.Context, assignmentID string) error {
	return s.assignments.Delete(ctx, assignmentID)
}

func (s *CatalogService) ListAssignments(ctx context.Context, clientID string) ([]ports.AssignmentView, error) {
	return assignmentViews(ctx, s.assignments, s.services, s.subServices, clientID)
}

// SyncClients is the reset-and-fan-out reconciliation described to admins as
// "assign newly added sub-services to existing clients". After it runs, every
// client previously assigned to the service holds exactly one row per active
// sub-service (or a single service-level row when none are active).
// Per-client sub-service customization does not survive a sync; that is the
// documented trade-off, not an accident.
func (s *CatalogService) SyncClients(ctx context.Context, serviceID string) error {
	if _, err := s.services.FindByID(ctx, serviceID); err != nil {
		return err
	}

	release, err := s.locker.Acquire(ctx, serviceID)
	if err != nil {
		return err
	}
	defer release()

	subs, err := s.subServices.ListByService(ctx, serviceID, true)
	if err != nil {
		return err
	}
	clientIDs, err := s.assignments.DistinctClientIDs(ctx, serviceID)
	if err != nil {
		return err
	}

	// Delete must complete before recreation starts or the unique index
	// rejects the new rows.
	if err := s.assignments.DeleteByService(ctx, serviceID); err != nil {
		return fmt.Errorf("sync %s: delete stale assignments: %w", serviceID, err)
	}

	now := time.Now().UTC()
	rows := make([]*domain.ClientService, 0, len(clientIDs)*max(len(subs), 1))
	for _, clientID := range clientIDs {
		if len(subs) == 0 {
			rows = append(rows, &domain.ClientService{
				ID:        uuid.NewString(),
				ClientID:  clientID,
				ServiceID: serviceID,
				CreatedAt: now,
			})
			continue
		}
		for _, sub := range subs {
			rows = append(rows, &domain.ClientService{
				ID:           uuid.NewString(),
				ClientID:     clientID,
				ServiceID:    serviceID,
				SubServiceID: sub.ID,
				CreatedAt:    now,
			})
		}
	}

	if len(rows) > 0 {
		if err := s.assignments.CreateMany(ctx, rows); err != nil {
			// Clients are left with zero rows for this service; a retried
			// sync recreates them from the same distinct-client set only if
			// it ran before the delete. Log loudly.
			s.log.Error().Err(err).Str("service_id", serviceID).Int("rows", len(rows)).Msg("sync recreate failed after delete")
			return fmt.Errorf("sync %s: recreate assignments: %w", serviceID, err)
		}
	}

	s.log.Info().
		Str("service_id", serviceID).
		Int("clients", len(clientIDs)).
		Int("sub_services", len(subs)).
		Int("rows", len(rows)).
		Msg("client assignments synced")
	return nil
}

// assignmentViews joins a client's assignments with catalog names. Shared by
// CatalogService and ClientManager.
func assignmentViews(
	ctx context.Context,
	assignments ports.AssignmentRepository,
	services ports.ServiceRepository,
	subServices ports.SubServiceRepository,
	clientID string,
) ([]ports.AssignmentView, error) {
	rows, err := assignments.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	svcs, err := services.List(ctx, false)
	if err != nil {
		return nil, err
	}
	svcNames := make(map[string]string, len(svcs))
	for _, svc := range svcs {
		svcNames[svc.ID] = svc.Name
	}

	views := make([]ports.AssignmentView, 0, len(rows))
	for _, row := range rows {
		view := ports.AssignmentView{
			ID:          row.ID,
			ServiceID:   row.ServiceID,
			ServiceName: svcNames[row.ServiceID],
		}
		if row.SubServiceID != "" {
			sub, err := subServices.FindByID(ctx, row.SubServiceID)
			if err == nil {
				view.SubServiceID = sub.ID
				view.SubServiceName = sub.Name
			} else {
				view.SubServiceID = row.SubServiceID
			}
		}
		views = append(views, view)
	}
	return views, nil
}
