package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"acorn/config"
	"acorn/internal/domain/lifecycle"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

// Params defines the dependencies of the shared *gorm.DB
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary and any replicas through go-lib. The pool is pinged and
// watched once the app starts and closed when it stops.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres config is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watcher := &poolWatcher{logger: params.Logger, stats: sqlDB.Stats, warnAfter: poolWaitWarnAfter}
	stopWatching := func() {}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := ping(startCtx, sqlDB); err != nil {
				return err
			}
			stopWatching = watcher.start(poolSampleInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatching()

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL pool")
		},
	})

	return db, nil
}

func ping(ctx context.Context, sqlDB *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping PostgreSQL")
}

// poolWatcher samples pool stats and reports requests that had to wait for a connection.
type poolWatcher struct {
	logger    *slog.Logger
	stats     func() sql.DBStats
	warnAfter time.Duration
}

// start samples every interval until the returned stop func is called.
func (w *poolWatcher) start(interval time.Duration) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		prev := w.stats()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cur := w.stats()
				w.report(ctx, prev, cur)
				prev = cur
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

func (w *poolWatcher) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 || w.logger == nil {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= w.warnAfter {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Postgres pool saturated",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
