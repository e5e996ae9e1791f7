package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a signed-in browser. The raw token lives only in the client cookie.
type Session struct {
	ID        uuid.UUID // The unique ID for this session, also carried as the token's jti claim.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw session token.
	UserAgent string    // User agent observed at sign-in.
	IPAddress string    // Client IP observed at sign-in.
	ExpiresAt time.Time // The exact time when this session becomes invalid.
	CreatedAt time.Time // Timestamp of when the user signed in.
}

// IsExpired reports whether the session is no longer usable at the given instant.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionUser is the authenticated principal handed to request handlers.
type SessionUser struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
	ExpiresAt time.Time
}
