package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"acorn/config"
	"acorn/internal/delivery"
	"acorn/internal/delivery/middleware"
	"acorn/internal/delivery/worker/handler"
	"acorn/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg     *config.Config
	logger  *slog.Logger
	server  *echo.Echo
	janitor *Janitor
	cancel  context.CancelFunc
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
	Janitor     *Janitor
}

// NewServer creates the worker HTTP server, which also owns the session janitor
func NewServer(params ServerParams) (delivery.Delivery, error) {
	janitorCtx, cancel := context.WithCancel(context.Background())
	srv := &workerServer{
		cfg:     params.Cfg,
		logger:  params.Logger,
		server:  newEcho(params),
		janitor: params.Janitor,
		cancel:  cancel,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go srv.janitor.Run(janitorCtx)

			return nil
		},
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Pub/Sub push endpoint
	e.POST("/push", params.PushHandler.HandlePush)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Worker.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop halts the janitor and gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	s.cancel()

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
