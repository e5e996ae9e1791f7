package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the claims carried by a session token. UserID and SessionID are
// decoded from the registered "sub" and "jti" claims.
type SessionClaims struct {
	UserID    uuid.UUID `json:"-"`
	SessionID uuid.UUID `json:"-"`
	jwt.RegisteredClaims
}

// IssuedToken is a freshly signed session token.
type IssuedToken struct {
	Token     string
	SessionID uuid.UUID
	ExpiresAt time.Time
}

// TokenService signs and verifies session tokens.
type TokenService interface {
	// Issue creates a signed session token for the user.
	Issue(userID uuid.UUID) (*IssuedToken, error)

	// Validate verifies signature and expiry and returns the claims.
	Validate(token string) (*SessionClaims, error)

	// HashToken returns the value stored server-side for a raw token.
	HashToken(token string) string

	// SessionTTL returns how long issued sessions stay valid.
	SessionTTL() time.Duration
}
