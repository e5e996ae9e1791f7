package main

import (
	"context"
	"log/slog"
	"os"

	"acorn/config"
	"acorn/internal/delivery"
	"acorn/internal/delivery/http"
	"acorn/internal/delivery/http/middleware"
	"acorn/internal/delivery/http/router/handler"
	"acorn/internal/delivery/worker"
	workerhandler "acorn/internal/delivery/worker/handler"
	"acorn/internal/infra/auth"
	"acorn/internal/infra/cache"
	logs "acorn/internal/infra/log"
	"acorn/internal/infra/metrics"
	"acorn/internal/infra/persistence/postgres"
	"acorn/internal/infra/pubsub"
	"acorn/internal/infra/qrcode"
	"acorn/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			registerDBStats,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			metrics.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSessionRepository,
			postgres.NewCustomerRepository,
			postgres.NewInvoiceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			cache.NewViewCache,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewSignupService,
			impl.NewInvoiceQueryService,
			impl.NewInvoiceMutationService,
			impl.NewCustomerService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionCookie,
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewInvoiceHandler,
			handler.NewCustomerHandler,
			handler.NewDashboardHandler,
			workerhandler.NewPushHandler,
			worker.NewJanitor,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerDBStats exposes the connection pool through the metrics registry, labelled by service.
func registerDBStats(db *gorm.DB, cfg *config.Config, m *metrics.Metrics) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return m.RegisterDBStats(sqlDB, cfg.Env.ServiceName)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
