package domain

import (
	"strings"
	"time"
)

const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"
)

// User models a login identity. Clients authenticate with their registered
// phone number, stored only as a bcrypt hash. Deactivated users keep their
// record but can no longer log in.
type User struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"-" bson:"phone"`
	PhoneHash string    `json:"-" bson:"phone_hash"`
	Role      string    `json:"role" bson:"role"`
	Active    bool      `json:"active" bson:"active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NormalizeEmail lowercases and trims an email for case-insensitive lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone reduces free-form phone input to its last ten digits.
// The same normalization is applied when the hash is written (onboarding)
// and when it is verified (login), so formatting differences between the
// two inputs never cause a mismatch.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 10 {
		return digits[len(digits)-10:]
	}
	return digits
}
