package ports

import (
	"context"

	"github.com/firmdesk/client-portal/internal/core/domain"
)

// ServiceRepository defines persistence for top-level services.
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	// List returns services, optionally restricted to active ones.
	List(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// SubServiceRepository defines persistence for sub-services.
type SubServiceRepository interface {
	Create(ctx context.Context, sub *domain.SubService) (*domain.SubService, error)
	Update(ctx context.Context, sub *domain.SubService) error
	FindByID(ctx context.Context, id string) (*domain.SubService, error)
	// ListByService returns a service's sub-services, optionally active only.
	ListByService(ctx context.Context, serviceID string, activeOnly bool) ([]*domain.SubService, error)
	// ListActive returns every active sub-service across all services.
	ListActive(ctx context.Context) ([]*domain.SubService, error)
	// DeleteByService hard-deletes all sub-services of a service (used only
	// when the parent service itself is deleted).
	DeleteByService(ctx context.Context, serviceID string) error
}

// AssignmentRepository defines persistence for client-service assignments.
// Implementations enforce uniqueness of (client_id, service_id, sub_service_id)
// and report violations as domain.ErrAssignmentExists.
type AssignmentRepository interface {
	Create(ctx context.Context, cs *domain.ClientService) (*domain.ClientService, error)
	CreateMany(ctx context.Context, rows []*domain.ClientService) error
	ListByClient(ctx context.Context, clientID string) ([]*domain.ClientService, error)
	// DistinctClientIDs returns each client assigned to the service at all,
	// regardless of which sub-service (or none) the assignment names.
	DistinctClientIDs(ctx context.Context, serviceID string) ([]string, error)
	DeleteByService(ctx context.Context, serviceID string) error
	DeleteByClient(ctx context.Context, clientID string) error
	Delete(ctx context.Context, id string) error
}

// SyncLocker serializes catalog syncs per service. Acquire returns a release
// function, or domain.ErrSyncInProgress when the lock is already held.
type SyncLocker interface {
	Acquire(ctx context.Context, serviceID string) (release func(), err error)
}

// AssignmentView is an assignment joined with its catalog names.
type AssignmentView struct {
	ID             string
	ServiceID      string
	ServiceName    string
	SubServiceID   string
	SubServiceName string
}

// SubServiceView is a sub-service joined with its parent service name.
type SubServiceView struct {
	SubService  domain.SubService
	ServiceName string
}

// CatalogService covers catalog administration and the client-assignment
// sync engine.
type CatalogService interface {
	CreateService(ctx context.Context, name, description string) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, name, description *string, active *bool) (*domain.Service, error)
	// DeleteService hard-deletes the service and its sub-services.
	DeleteService(ctx context.Context, id string) error
	ListServices(ctx context.Context, activeOnly bool) ([]*domain.Service, error)

	CreateSubService(ctx context.Context, serviceID, name string) (*domain.SubService, error)
	UpdateSubService(ctx context.Context, id string, name *string, active *bool) (*domain.SubService, error)
	// DeactivateSubService is the soft delete: the row survives so existing
	// documents keep a valid reference.
	DeactivateSubService(ctx context.Context, id string) error
	ListSubServices(ctx context.Context, serviceID string) ([]*domain.SubService, error)
	ListAllSubServices(ctx context.Context) ([]SubServiceView, error)

	Assign(ctx context.Context, clientID, serviceID, subServiceID string) (*domain.ClientService, error)
	Unassign(ctx context.Context, assignmentID string) error
	ListAssignments(ctx context.Context, clientID string) ([]AssignmentView, error)

	// SyncClients reconciles every assigned client against the service's
	// current active sub-service set: delete all rows for the service, then
	// recreate one row per (client, active sub-service), or a single
	// service-level row per client when no sub-services are active.
	// Idempotent; serialized per service.
	SyncClients(ctx context.Context, serviceID string) error
}
