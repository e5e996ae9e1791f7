package middleware

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"acorn/config"
	deliverycontext "acorn/internal/delivery/context"
	"acorn/internal/domain/entity"
	domainerrors "acorn/internal/domain/errors"
	"acorn/internal/infra/metrics"
	mockUsecase "acorn/internal/mocks/usecase"
	"acorn/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{CookieName: "acorn_session"},
		RateLimit: &config.RateLimitConfig{
			RequestsPerSecond: 1,
			Burst:             2,
			ExpiresIn:         time.Minute,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type sessionFixtures struct {
	authUC     *mockUsecase.MockAuthUsecase
	middleware *SessionMiddleware
}

func createTestSessionMiddleware(t *testing.T) *sessionFixtures {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return &sessionFixtures{
		authUC: authUC,
		middleware: NewSessionMiddleware(SessionMiddlewareParams{
			AuthUC: authUC,
			Cookie: NewSessionCookie(testConfig()),
			Logger: discardLogger(),
		}),
	}
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRequireSession(t *testing.T) {
	t.Run("no cookie redirects to login", func(t *testing.T) {
		f := createTestSessionMiddleware(t)
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rec := httptest.NewRecorder()

		err := f.middleware.RequireSession(okHandler)(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, usecase.PathLogin, rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("invalid session clears the cookie", func(t *testing.T) {
		f := createTestSessionMiddleware(t)
		f.authUC.EXPECT().ResolveSession(mock.Anything, "stale").
			Return(nil, errors.WithStack(domainerrors.ErrSessionInvalid))

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: "acorn_session", Value: "stale"})
		rec := httptest.NewRecorder()

		err := f.middleware.RequireSession(okHandler)(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, usecase.PathLogin, rec.Header().Get(echo.HeaderLocation))
		assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), "acorn_session=;")
	})

	t.Run("expired session wrapped by the usecase still redirects", func(t *testing.T) {
		f := createTestSessionMiddleware(t)
		f.authUC.EXPECT().ResolveSession(mock.Anything, "old").
			Return(nil, domainerrors.ErrSessionInvalid.WrapMessage("session expired"))

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: "acorn_session", Value: "old"})
		rec := httptest.NewRecorder()

		err := f.middleware.RequireSession(okHandler)(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("store failure keeps the cookie and surfaces an error", func(t *testing.T) {
		f := createTestSessionMiddleware(t)
		dbErr := errors.New("connection refused")
		f.authUC.EXPECT().ResolveSession(mock.Anything, "good").
			Return(nil, errors.Wrap(dbErr, "failed to find session"))

		e := echo.New()
		e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: "acorn_session", Value: "good"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := f.middleware.RequireSession(okHandler)(c)

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Empty(t, rec.Header().Get(echo.HeaderSetCookie))
		assert.Empty(t, rec.Header().Get(echo.HeaderLocation))

		e.HTTPErrorHandler(err, c)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("valid session reaches the handler", func(t *testing.T) {
		f := createTestSessionMiddleware(t)
		user := &entity.SessionUser{SessionID: uuid.New(), UserID: uuid.New()}
		f.authUC.EXPECT().ResolveSession(mock.Anything, "good").Return(user, nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: "acorn_session", Value: "good"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := f.middleware.RequireSession(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		stored, ok := deliverycontext.GetSessionUser(c)
		require.True(t, ok)
		assert.Equal(t, user, stored)
	})
}

func TestRedirectIfAuthenticated(t *testing.T) {
	t.Run("signed in goes to the dashboard", func(t *testing.T) {
		f := createTestSessionMiddleware(t)
		f.authUC.EXPECT().ResolveSession(mock.Anything, "good").Return(&entity.SessionUser{}, nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.AddCookie(&http.Cookie{Name: "acorn_session", Value: "good"})
		rec := httptest.NewRecorder()

		require.NoError(t, f.middleware.RedirectIfAuthenticated(okHandler)(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, usecase.PathDashboard, rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("anonymous stays", func(t *testing.T) {
		f := createTestSessionMiddleware(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, f.middleware.RedirectIfAuthenticated(okHandler)(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("stale session stays", func(t *testing.T) {
		f := createTestSessionMiddleware(t)
		f.authUC.EXPECT().ResolveSession(mock.Anything, "stale").
			Return(nil, errors.WithStack(domainerrors.ErrSessionInvalid))

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/signup", nil)
		req.AddCookie(&http.Cookie{Name: "acorn_session", Value: "stale"})
		rec := httptest.NewRecorder()

		require.NoError(t, f.middleware.RedirectIfAuthenticated(okHandler)(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSessionCookie_Write(t *testing.T) {
	cookie := NewSessionCookie(testConfig())
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/login", nil), rec)

	cookie.Write(c, &usecase.IssuedSession{Token: "tok", ExpiresAt: time.Now().Add(time.Hour)})

	header := rec.Header().Get(echo.HeaderSetCookie)
	assert.True(t, strings.HasPrefix(header, "acorn_session=tok"))
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "SameSite=Lax")
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"app error", errors.WithStack(domainerrors.ErrInvoiceNotFound), http.StatusNotFound, "INVOICE_NOT_FOUND"},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"deadline", errors.Wrap(context.DeadlineExceeded, "query"), http.StatusGatewayTimeout, "TIMEOUT"},
		{"unknown", errors.New("pq: connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()
	e := echo.New()
	e.Use(NewMetricsMiddleware(m).Handle)
	e.GET("/dashboard/invoices/:id", func(c echo.Context) error {
		return errors.WithStack(domainerrors.ErrInvoiceNotFound)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/invoices/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	count, err := testutil.GatherAndCount(m.Registry(), "acorn_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func postLoginCodes(e *echo.Echo, attempts int, decorate func(i int, req *http.Request)) []int {
	codes := make([]int, 0, attempts)
	for i := range attempts {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		decorate(i, req)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	return codes
}

func TestCredentialRateLimiter(t *testing.T) {
	limited := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}

	t.Run("same peer is throttled", func(t *testing.T) {
		extractor, err := NewIPExtractor(nil)
		require.NoError(t, err)
		e := echo.New()
		e.IPExtractor = extractor
		e.POST("/login", okHandler, NewCredentialRateLimiter(testConfig()))

		codes := postLoginCodes(e, 3, func(_ int, req *http.Request) {
			req.RemoteAddr = "203.0.113.7:40000"
		})

		assert.Equal(t, limited, codes)
	})

	t.Run("spoofed forwarding headers do not reset the budget", func(t *testing.T) {
		extractor, err := NewIPExtractor(nil)
		require.NoError(t, err)
		e := echo.New()
		e.IPExtractor = extractor
		e.POST("/login", okHandler, NewCredentialRateLimiter(testConfig()))

		codes := postLoginCodes(e, 3, func(i int, req *http.Request) {
			req.RemoteAddr = "203.0.113.7:40000"
			req.Header.Set(echo.HeaderXForwardedFor, fmt.Sprintf("198.51.100.%d", i+1))
			req.Header.Set(echo.HeaderXRealIP, fmt.Sprintf("198.51.100.%d", i+1))
		})

		assert.Equal(t, limited, codes)
	})

	t.Run("clients behind a trusted proxy are told apart", func(t *testing.T) {
		extractor, err := NewIPExtractor([]string{"192.0.2.0/24"})
		require.NoError(t, err)
		e := echo.New()
		e.IPExtractor = extractor
		e.POST("/login", okHandler, NewCredentialRateLimiter(testConfig()))

		codes := postLoginCodes(e, 3, func(i int, req *http.Request) {
			req.RemoteAddr = "192.0.2.10:40000"
			req.Header.Set(echo.HeaderXForwardedFor, fmt.Sprintf("198.51.100.%d", i+1))
		})

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusOK}, codes)
	})
}

func TestNewIPExtractor_RejectsMalformedRange(t *testing.T) {
	_, err := NewIPExtractor([]string{"not-a-cidr"})
	require.Error(t, err)
}
