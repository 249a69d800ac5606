package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/firmdesk/client-portal/internal/core/domain"
	"github.com/firmdesk/client-portal/internal/core/ports"
)

// EnsureAdmin creates the administrator login at startup when ADMIN_EMAIL is
// configured. Clients are only ever onboarded with the CLIENT role, so a
// fresh deployment has no way into the admin area without this. Idempotent:
// an existing user with the email is left untouched, whatever its role.
func EnsureAdmin(ctx context.Context, users ports.UserRepository, email, name, phone string, log zerolog.Logger) error {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil
	}

	digits := domain.NormalizePhone(phone)
	if digits == "" {
		return errors.New("admin bootstrap: ADMIN_PHONE must contain digits")
	}

	if _, err := users.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("admin bootstrap: %w", err)
	}

	hash, err := HashPhone(digits)
	if err != nil {
		return fmt.Errorf("admin bootstrap: hash phone: %w", err)
	}

	now := time.Now().UTC()
	admin, err := users.Create(ctx, &domain.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		PhoneHash: hash,
		Role:      domain.RoleAdmin,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		// Lost a race against a concurrent replica doing the same bootstrap.
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return fmt.Errorf("admin bootstrap: %w", err)
	}

	log.Info().Str("email", admin.Email).Msg("administrator account created")
	return nil
}
