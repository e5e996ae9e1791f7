package postgres

import (
	"context"
	"testing"
	"time"

	"acorn/internal/domain/entity"
	domainerrors "acorn/internal/domain/errors"
	"acorn/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		id := uuid.New()

		mock.ExpectQuery(`FROM "users" WHERE "users"\."email" = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "created_at"}).
				AddRow(id.String(), "User", "user@nextmail.com", "$2a$10$hash", time.Now()))

		user, err := repo.FindByEmail(context.Background(), "user@nextmail.com")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`FROM "users" WHERE "users"\."email" = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		user, err := repo.FindByEmail(context.Background(), "nobody@nextmail.com")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`INSERT INTO "users"`).WillReturnResult(sqlmock.NewResult(0, 1))

		user := &entity.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "hash"}
		require.NoError(t, repo.Create(context.Background(), user))
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`INSERT INTO "users"`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, Message: "duplicate key value"})

		err := repo.Create(context.Background(), &entity.User{Name: "Ada", Email: "ada@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
