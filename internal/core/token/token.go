// Package token is the single place JWTs are issued and verified. There is
// exactly one signing key and one expiry policy for the whole process; the
// cookie max-age and the token lifetime always agree.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL matches the auth cookie max-age: seven days.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalidToken covers every verification failure: malformed, expired,
// signature mismatch, wrong algorithm. Callers treat it as "unauthenticated",
// never as a system fault.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the decoded identity carried by a verified token.
type Claims struct {
	Subject string // user id
	Role    string
}

type registeredClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Service issues and verifies HS256 tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService builds a Service. A zero ttl selects DefaultTTL; any other value
// is used as given (config validation rejects negative TOKEN_TTL before it
// gets here).
func NewService(secret string, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue produces a signed token with the user id as the registered subject
// claim and the role as a custom claim.
func (s *Service) Issue(userID, role string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, registeredClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role: role,
	})
	return t.SignedString(s.secret)
}

// Verify validates the signature and expiry and returns the decoded claims.
func (s *Service) Verify(tokenString string) (Claims, error) {
	var rc registeredClaims
	t, err := jwt.ParseWithClaims(tokenString, &rc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !t.Valid {
		return Claims{}, ErrInvalidToken
	}
	return Claims{Subject: rc.Subject, Role: rc.Role}, nil
}
