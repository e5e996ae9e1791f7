package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"
	"time"

	"acorn/config"
	deliverycontext "acorn/internal/delivery/context"
	"acorn/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newLoggedMockDB(t *testing.T, ql *queryLogger) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 ql,
	})
	require.NoError(t, err)

	return db, mock
}

func TestQueryLogger_NeverLogsBoundValues(t *testing.T) {
	var buf bytes.Buffer
	ql := newQueryLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), nil)
	db, mock := newLoggedMockDB(t, ql)

	mock.ExpectExec(`INSERT INTO "sessions"`).WillReturnError(errors.New("connection reset"))
	mock.ExpectExec(`INSERT INTO "users"`).WillReturnError(errors.New("connection reset"))

	err := NewSessionRepository(db).Create(context.Background(), &entity.Session{
		UserID:    uuid.New(),
		TokenHash: "session-token-hash-value",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.Error(t, err)

	err = NewUserRepository(db).Create(context.Background(), &entity.User{
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$stored-password-hash",
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	out := buf.String()
	assert.Contains(t, out, "Postgres query failed")
	assert.Contains(t, out, `INSERT INTO \"sessions\"`)
	assert.NotContains(t, out, "session-token-hash-value")
	assert.NotContains(t, out, "stored-password-hash")
	assert.NotContains(t, out, "ada@example.com")
}

func TestQueryLogger_ParamsFilter(t *testing.T) {
	ql := newQueryLogger(nil, nil)

	sqlText, params := ql.ParamsFilter(context.Background(), `SELECT * FROM "users" WHERE email = $1`, "ada@example.com")
	assert.Equal(t, `SELECT * FROM "users" WHERE email = $1`, sqlText)
	assert.Empty(t, params)
}

func TestQueryLogger_Trace(t *testing.T) {
	statement := func() (string, int64) { return `SELECT * FROM "invoices"`, 3 }

	t.Run("uses the request scoped logger", func(t *testing.T) {
		var scoped bytes.Buffer
		ql := newQueryLogger(slog.New(slog.DiscardHandler), nil)
		ctx := deliverycontext.WithRequestScope(context.Background(), "req-42",
			slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-42")))

		ql.Trace(ctx, time.Now(), statement, errors.New("boom"))

		assert.Contains(t, scoped.String(), "request_id=req-42")
		assert.Contains(t, scoped.String(), "error=boom")
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		var buf bytes.Buffer
		ql := newQueryLogger(slog.New(slog.NewTextHandler(&buf, nil)), nil)

		ql.Trace(context.Background(), time.Now(), statement, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow statements warn past the configured threshold", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Log.SlowQuery = time.Millisecond
		ql := newQueryLogger(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

		ql.Trace(context.Background(), time.Now().Add(-time.Second), statement, nil)

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "Postgres slow query")
		assert.Contains(t, buf.String(), "rows=3")
	})

	t.Run("routine statements only in debug", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

		newQueryLogger(slog.New(handler), nil).Trace(context.Background(), time.Now(), statement, nil)
		assert.Empty(t, buf.String())

		cfg := &config.Config{}
		cfg.Env.Debug = true
		newQueryLogger(slog.New(handler), cfg).Trace(context.Background(), time.Now(), statement, nil)
		assert.Contains(t, buf.String(), "Postgres query")
	})

	t.Run("silent mode", func(t *testing.T) {
		var buf bytes.Buffer
		ql := newQueryLogger(slog.New(slog.NewTextHandler(&buf, nil)), nil).LogMode(logger.Silent)

		ql.Trace(context.Background(), time.Now(), statement, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestPoolWatcher_Report(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	tests := []struct {
		name  string
		cur   sql.DBStats
		level string
	}{
		{name: "no new waits", cur: prev},
		{
			name:  "short waits stay at debug",
			cur:   sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond, InUse: 4},
			level: "level=DEBUG",
		},
		{
			name:  "long waits warn",
			cur:   sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second, InUse: 10, MaxOpenConnections: 10},
			level: "level=WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := &poolWatcher{
				logger:    slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
				warnAfter: poolWaitWarnAfter,
			}

			w.report(context.Background(), prev, tt.cur)

			if tt.level == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), "Postgres pool saturated")
		})
	}
}

func TestPoolWatcher_StartStop(t *testing.T) {
	samples := make(chan struct{}, 8)
	w := &poolWatcher{
		logger: slog.New(slog.DiscardHandler),
		stats: func() sql.DBStats {
			select {
			case samples <- struct{}{}:
			default:
			}

			return sql.DBStats{}
		},
		warnAfter: poolWaitWarnAfter,
	}

	stop := w.start(time.Millisecond)
	<-samples
	<-samples
	stop()
}
