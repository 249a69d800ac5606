package ports

import (
	"context"

	"github.com/firmdesk/client-portal/internal/core/domain"
)

// ClientRepository defines persistence for client profiles.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	// FindByUserID resolves the client owning the given login identity.
	FindByUserID(ctx context.Context, userID string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

// OnboardClientInput carries everything needed to create a client together
// with its login identity and initial service assignment.
type OnboardClientInput struct {
	Name         string
	Organization string
	Email        string
	Phone        string
	ServiceID    string
	// SubServiceID narrows the initial assignment to one sub-service.
	// When empty, the client is fanned out over the service's active
	// sub-services, or assigned at service level if there are none.
	SubServiceID string
}

// ClientDetail is a client joined with its login state and assignments.
type ClientDetail struct {
	Client      domain.Client
	Email       string
	Active      bool
	Assignments []AssignmentView
}

// ClientManager covers the admin-facing client lifecycle.
type ClientManager interface {
	Onboard(ctx context.Context, in OnboardClientInput) (*domain.Client, error)
	Get(ctx context.Context, id string) (*ClientDetail, error)
	List(ctx context.Context) ([]ClientDetail, error)
	// Delete cascades in strict order: documents (and their blobs,
	// best effort), assignments, the client, then its user.
	Delete(ctx context.Context, id string) error
}
