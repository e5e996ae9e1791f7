package postgres

import (
	"context"
	"time"

	"acorn/internal/domain/entity"
	domainerrors "acorn/internal/domain/errors"
	"acorn/internal/domain/repository"
	"acorn/internal/infra/persistence/model"
	"acorn/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain.SessionRepository interface.
type sessionRepository struct {
	q *query.Query
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{q: query.Use(db)}
}

// Create persists a new session, representing a signed-in browser.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}

	sessionM := fromSessionDomain(session)
	if err := repo.q.SessionModel.WithContext(ctx).Create(sessionM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSessionInvalid.WrapMessage("session token already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSessionInvalid.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByTokenHash reads from the primary; a session is checked immediately after it is written.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	sessionM, err := repo.q.SessionModel.WithContext(ctx).
		WriteDB().
		Where(repo.q.SessionModel.TokenHash.Eq(tokenHash)).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toSessionDomain(sessionM), nil
}

func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	_, err := repo.q.SessionModel.WithContext(ctx).
		Where(repo.q.SessionModel.TokenHash.Eq(tokenHash)).
		Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

func (repo *sessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := repo.q.SessionModel.WithContext(ctx).
		Where(repo.q.SessionModel.UserID.Eq(userID)).
		Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user sessions")
	}

	return nil
}

func (repo *sessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result, err := repo.q.SessionModel.WithContext(ctx).
		Where(repo.q.SessionModel.ExpiresAt.Lt(before)).
		Delete()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}

func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		UserAgent: data.UserAgent,
		IPAddress: data.IPAddress,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		UserAgent: data.UserAgent,
		IPAddress: data.IPAddress,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
