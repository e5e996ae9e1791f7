package worker

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"acorn/config"
	"acorn/internal/delivery/worker/handler"
	"acorn/internal/infra/metrics"
	mockSvc "acorn/internal/mocks/service"
	mockUsecase "acorn/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth:   &config.AuthConfig{SessionCleanupInterval: 10 * time.Millisecond},
		Worker: &config.WorkerConfig{Port: 8081},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJanitor_Sweep(t *testing.T) {
	t.Run("records removed sessions", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().CleanupExpiredSessions(mock.Anything).Return(int64(3), nil).Once()
		m := metrics.New()

		j := NewJanitor(JanitorParams{Cfg: testConfig(), AuthUC: authUC, Metrics: m, Logger: discardLogger()})
		j.Sweep(context.Background())

		expected := `
# HELP acorn_sessions_expired_removed_total Expired sessions removed by the janitor.
# TYPE acorn_sessions_expired_removed_total counter
acorn_sessions_expired_removed_total 3
`
		require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "acorn_sessions_expired_removed_total"))
	})

	t.Run("store failure is logged", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().CleanupExpiredSessions(mock.Anything).Return(int64(0), errors.New("connection reset")).Once()

		j := NewJanitor(JanitorParams{Cfg: testConfig(), AuthUC: authUC, Metrics: metrics.New(), Logger: discardLogger()})

		assert.NotPanics(t, func() { j.Sweep(context.Background()) })
	})
}

func TestJanitor_RunStopsWithContext(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	swept := make(chan struct{}, 1)
	authUC.EXPECT().CleanupExpiredSessions(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}

			return 0, nil
		}).Maybe()

	j := NewJanitor(JanitorParams{Cfg: testConfig(), AuthUC: authUC, Metrics: metrics.New(), Logger: discardLogger()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Run(ctx)
		close(done)
	}()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("janitor did not sweep")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestWorkerRoutes(t *testing.T) {
	cfg := testConfig()
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:  cfg,
		Logger:  discardLogger(),
		Cache:   mockSvc.NewMockViewCache(t),
		Metrics: metrics.New(),
	})

	e := newEcho(ServerParams{Cfg: cfg, Logger: discardLogger(), PushHandler: pushHandler})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/push", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
