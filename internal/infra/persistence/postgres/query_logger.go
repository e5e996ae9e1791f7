package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"acorn/config"
	deliverycontext "acorn/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQuery = 200 * time.Millisecond

// queryLogger routes gorm output through the request-scoped slog logger.
//
// Statements are always logged in their parameterized form. Bound values carry
// password hashes, session token hashes and user search terms, so none of them
// reach the log.
type queryLogger struct {
	base      *slog.Logger
	level     logger.LogLevel
	slowQuery time.Duration
}

var (
	_ logger.Interface  = (*queryLogger)(nil)
	_ gorm.ParamsFilter = (*queryLogger)(nil)
)

func newQueryLogger(base *slog.Logger, cfg *config.Config) *queryLogger {
	ql := &queryLogger{base: base, level: logger.Warn, slowQuery: defaultSlowQuery}
	if cfg == nil {
		return ql
	}
	if cfg.Env.Debug {
		ql.level = logger.Info
	}
	if cfg.Env.Log.SlowQuery > 0 {
		ql.slowQuery = cfg.Env.Log.SlowQuery
	}

	return ql
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

// ParamsFilter drops the bound values before gorm renders the statement for Trace.
func (l *queryLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *queryLogger) Info(ctx context.Context, format string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, format, args)
}

func (l *queryLogger) Warn(ctx context.Context, format string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, format, args)
}

func (l *queryLogger) Error(ctx context.Context, format string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, format, args)
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.statement(ctx, slog.LevelError, "Postgres query failed", fc, elapsed, slog.String("error", err.Error()))
	case l.slowQuery > 0 && elapsed > l.slowQuery && l.level >= logger.Warn:
		l.statement(ctx, slog.LevelWarn, "Postgres slow query", fc, elapsed, slog.Duration("slow_query", l.slowQuery))
	case l.level >= logger.Info:
		l.statement(ctx, slog.LevelDebug, "Postgres query", fc, elapsed)
	}
}

func (l *queryLogger) message(ctx context.Context, at logger.LogLevel, level slog.Level, format string, args []any) {
	if l.level < at {
		return
	}

	l.scoped(ctx).LogAttrs(ctx, level, "Postgres: "+fmt.Sprintf(format, args...))
}

func (l *queryLogger) statement(
	ctx context.Context,
	level slog.Level,
	msg string,
	fc func() (string, int64),
	elapsed time.Duration,
	extra ...slog.Attr,
) {
	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}, extra...)

	l.scoped(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) scoped(ctx context.Context) *slog.Logger {
	base := l.base
	if base == nil {
		base = slog.New(slog.DiscardHandler)
	}

	return deliverycontext.GetLoggerOrDefault(ctx, base)
}
