package auth

import (
	"testing"
	"time"

	"acorn/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{SessionTTL: time.Hour}}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()
	issued, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.NotEqual(t, uuid.Nil, issued.SessionID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 5*time.Second)

	claims, err := svc.Validate(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, issued.SessionID, claims.SessionID)
	assert.Equal(t, time.Hour, svc.SessionTTL())
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("first-secret"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("second-secret"))
	require.NoError(t, err)

	issued, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Validate(issued.Token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	issued, err := impl.Issue(uuid.New())
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.Validate(issued.Token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	_, err = svc.Validate("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
}

func TestJWTService_HashTokenIsStable(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	first := svc.HashToken("token-value")
	assert.Len(t, first, 64)
	assert.Equal(t, first, svc.HashToken("token-value"))
	assert.NotEqual(t, first, svc.HashToken("other-token"))
}
