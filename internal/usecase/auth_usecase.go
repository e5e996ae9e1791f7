package usecase

import (
	"context"
	"time"

	"acorn/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the raw credentials submitted by the login form.
type LoginInput struct {
	Email    string
	Password string
}

// SignupInput defines the raw values submitted by the signup form.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// SessionMeta describes the client a session is issued to.
type SessionMeta struct {
	UserAgent string
	IPAddress string
}

// --- Output DTOs ---

// IssuedSession is the cookie material of a freshly created session.
type IssuedSession struct {
	Token     string
	ExpiresAt time.Time
}

// AuthOutcome is an ActionResult plus the session issued on success.
type AuthOutcome struct {
	Result  *ActionResult
	Session *IssuedSession
}

// AuthUsecase defines credential verification and session lifecycle.
type AuthUsecase interface {
	// Authorize returns the user when the credentials match, nil when they do not.
	// Only store failures are returned as errors.
	Authorize(ctx context.Context, email, password string) (*entity.User, error)

	// Authenticate signs the user in. Every failure collapses into one credentials error.
	Authenticate(ctx context.Context, input LoginInput, meta SessionMeta) *AuthOutcome

	// SignOut revokes the session of token and always redirects home.
	SignOut(ctx context.Context, token string) *ActionResult

	// ResolveSession returns the principal of a valid, unrevoked session.
	ResolveSession(ctx context.Context, token string) (*entity.SessionUser, error)

	// CleanupExpiredSessions deletes expired session rows and returns how many were removed.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}

// SignupUsecase registers a new account and signs it in.
type SignupUsecase interface {
	SignUp(ctx context.Context, input SignupInput, meta SessionMeta) *AuthOutcome
}
