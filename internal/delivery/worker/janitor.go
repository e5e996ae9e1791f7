package worker

import (
	"context"
	"log/slog"
	"time"

	"acorn/config"
	"acorn/internal/infra/metrics"
	"acorn/internal/usecase"

	"go.uber.org/fx"
)

// JanitorParams holds dependencies for the session janitor
type JanitorParams struct {
	fx.In

	Cfg     *config.Config
	AuthUC  usecase.AuthUsecase
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Janitor periodically deletes expired sessions.
type Janitor struct {
	interval time.Duration
	authUC   usecase.AuthUsecase
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewJanitor(params JanitorParams) *Janitor {
	return &Janitor{
		interval: params.Cfg.Auth.SessionCleanupInterval,
		authUC:   params.AuthUC,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

// Run sweeps once per interval until ctx is done.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info("[Janitor] Started", slog.Duration("interval", j.interval))

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("[Janitor] Stopped")

			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep removes expired sessions once. Failures are logged and retried on the next tick.
func (j *Janitor) Sweep(ctx context.Context) {
	removed, err := j.authUC.CleanupExpiredSessions(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "[Janitor] Failed to remove expired sessions", slog.Any("error", err))

		return
	}

	j.metrics.SessionsRemoved(removed)
	if removed > 0 {
		j.logger.InfoContext(ctx, "[Janitor] Removed expired sessions", slog.Int64("count", removed))
	}
}
