package ports

import (
	"context"

	"github.com/firmdesk/client-portal/internal/core/domain"
)

// UserRepository defines persistence for login identities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail looks up a user by normalized (lowercase) email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	// Login returns a signed token and the authenticated user, or
	// domain.ErrInvalidCredentials. It never reveals whether the email
	// exists, the account is inactive, or the phone was wrong.
	Login(ctx context.Context, email, phone string) (string, *domain.User, error)
}
