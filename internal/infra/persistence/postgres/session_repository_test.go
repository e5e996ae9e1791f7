package postgres

import (
	"context"
	"testing"
	"time"

	"acorn/internal/domain/entity"
	"acorn/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_CreateAndFind(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)

	mock.ExpectExec(`INSERT INTO "sessions"`).WillReturnResult(sqlmock.NewResult(0, 1))

	session := &entity.Session{UserID: userID, TokenHash: "abc", ExpiresAt: expiresAt}
	require.NoError(t, repo.Create(context.Background(), session))
	assert.NotEqual(t, uuid.Nil, session.ID)

	mock.ExpectQuery(`FROM "sessions" WHERE "sessions"\."token_hash" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token_hash", "user_agent", "ip_address", "expires_at", "created_at"}).
			AddRow(session.ID.String(), userID.String(), "abc", "curl", "127.0.0.1", expiresAt, time.Now()))

	found, err := repo.FindByTokenHash(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)
	assert.Equal(t, userID, found.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindByTokenHashMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery(`FROM "sessions"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	found, err := repo.FindByTokenHash(context.Background(), "missing")
	assert.Nil(t, found)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Deletes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	userID := uuid.New()
	cutoff := time.Now()

	mock.ExpectExec(`DELETE FROM "sessions" WHERE "sessions"\."token_hash" = \$1`).
		WithArgs("abc").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "sessions" WHERE "sessions"\."user_id" = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "sessions" WHERE "sessions"\."expires_at" < \$1`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 4))

	require.NoError(t, repo.DeleteByTokenHash(context.Background(), "abc"))
	require.NoError(t, repo.DeleteByUserID(context.Background(), userID))

	removed, err := repo.DeleteExpired(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
	require.NoError(t, mock.ExpectationsWereMet())
}
