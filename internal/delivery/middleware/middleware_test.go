package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"acorn/config"
	deliverycontext "acorn/internal/delivery/context"
	domainerrors "acorn/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	mw := NewRequestIDMiddleware(logger)

	t.Run("keeps the client request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var ctxID string
		err := mw.Process(func(c echo.Context) error {
			ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
			assert.NotNil(t, deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil))

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "req-123", ctxID)
		assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("replaces a malformed client request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "forged\" level=ERROR msg=\"x")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := mw.Process(func(c echo.Context) error { return nil })(c)

		require.NoError(t, err)
		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
		assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), deliverycontext.GetRequestID(c))
	})

	t.Run("generates one when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := mw.Process(func(c echo.Context) error { return nil })(c)

		require.NoError(t, err)
		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	})
}

func TestTimeoutMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	var deadline time.Time
	var ok bool
	err := NewTimeoutMiddleware(2*time.Second).Handle(func(c echo.Context) error {
		deadline, ok = c.Request().Context().Deadline()

		return nil
	})(c)

	require.NoError(t, err)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)
}

func TestLoggerMiddleware_LogsServerErrorsWithoutDebug(t *testing.T) {
	e := echo.New()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices?query=paid", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := mw.Handle(func(c echo.Context) error {
		return domainerrors.ErrInternalError
	})(c)

	require.Error(t, err)
	assert.Contains(t, buf.String(), "status=500")
	assert.Contains(t, buf.String(), "route=")

	buf.Reset()
	_ = mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(e.NewContext(req, httptest.NewRecorder()))
	assert.Empty(t, buf.String())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(domainerrors.ErrInvoiceNotFound.WrapMessage("missing")))
	assert.Equal(t, http.StatusMethodNotAllowed, StatusOf(echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusGatewayTimeout, StatusOf(context.DeadlineExceeded))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(assert.AnError))
}
