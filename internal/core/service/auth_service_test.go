package service

import (
	"context"
	"testing"
	"time"

	"github.com/firmdesk/client-portal/internal/core/domain"
	"github.com/firmdesk/client-portal/internal/core/token"
)

func seedUser(t *testing.T, repo *stubUserRepo, email, phone string, active bool) *domain.User {
	t.Helper()
	hash, err := HashPhone(domain.NormalizePhone(phone))
	if err != nil {
		t.Fatalf("hash phone: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		ID:        "user-" + email,
		Name:      "Test User",
		Email:     domain.NormalizeEmail(email),
		PhoneHash: hash,
		Role:      domain.RoleClient,
		Active:    active,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	tokens := token.NewService("secret", time.Hour)
	svc := NewAuthService(repo, tokens)

	seedUser(t, repo, "carol@example.com", "5512345678", true)

	tok, user, err := svc.Login(context.Background(), "carol@example.com", "5512345678")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := tokens.Verify(tok)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != user.ID {
		t.Fatalf("expected subject %s, got %s", user.ID, claims.Subject)
	}
	if claims.Role != domain.RoleClient {
		t.Fatalf("expected role %s, got %s", domain.RoleClient, claims.Role)
	}
}

func TestAuthService_Login_PhoneFormattingIgnored(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewService("secret", time.Hour))

	// Stored from a formatted number; presented bare at login.
	seedUser(t, repo, "dana@example.com", "+52 (55) 1234-5678", true)

	if _, _, err := svc.Login(context.Background(), "dana@example.com", "5512345678"); err != nil {
		t.Fatalf("expected formatting-insensitive match, got %v", err)
	}
	// And the other way around.
	if _, _, err := svc.Login(context.Background(), "DANA@Example.com", "+52 55-1234-5678"); err != nil {
		t.Fatalf("expected case/format-insensitive match, got %v", err)
	}
}

func TestAuthService_Login_WrongPhone(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewService("secret", time.Hour))

	seedUser(t, repo, "erin@example.com", "5512345678", true)

	if _, _, err := svc.Login(context.Background(), "erin@example.com", "5599999999"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewService("secret", time.Hour))

	// Unknown email must be indistinguishable from a wrong phone.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "5512345678"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewService("secret", time.Hour))

	seedUser(t, repo, "frank@example.com", "5512345678", false)

	if _, _, err := svc.Login(context.Background(), "frank@example.com", "5512345678"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for inactive user, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewService("secret", time.Hour))

	if _, _, err := svc.Login(context.Background(), "", "5512345678"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.com", "no digits here"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for digitless phone, got %v", err)
	}
}
