package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/firmdesk/client-portal/internal/core/domain"
	"github.com/firmdesk/client-portal/internal/core/ports"
	"github.com/firmdesk/client-portal/internal/core/token"
)

// bcryptCost matches the cost used when phone hashes are written at
// onboarding time.
const bcryptCost = 10

// AuthService verifies (email, phone) credentials and issues tokens.
type AuthService struct {
	users  ports.UserRepository
	tokens *token.Service
}

func NewAuthService(users ports.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login authenticates a user by email and phone. Every failure — unknown
// email, deactivated account, wrong phone — collapses to
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, phone string) (string, *domain.User, error) {
	email = domain.NormalizeEmail(email)
	phone = domain.NormalizePhone(phone)
	if email == "" || phone == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.Active {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PhoneHash), []byte(phone)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return tok, user, nil
}

// HashPhone produces the stored credential for a normalized phone number.
func HashPhone(phone string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(phone), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
