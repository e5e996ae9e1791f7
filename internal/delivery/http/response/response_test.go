package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "acorn/internal/delivery/context"
	domainerrors "acorn/internal/domain/errors"
	"acorn/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestActionResult(t *testing.T) {
	t.Run("redirect", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, ActionResult(c, usecase.Redirect(usecase.PathInvoices)))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, usecase.PathInvoices, rec.Header().Get(echo.HeaderLocation))
		assert.Empty(t, rec.Header().Get(HeaderFlash))
	})

	t.Run("redirect with notice", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, ActionResult(c, usecase.RedirectWithMessage(usecase.PathLogin, "Account created. Please log in.")))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "Account created. Please log in.", rec.Header().Get(HeaderFlash))
	})

	t.Run("done", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, ActionResult(c, usecase.Done("Deleted invoice.")))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"message":"Deleted invoice."},"meta":{"request_id":"req-1"}}`, rec.Body.String())
	})

	t.Run("validation error", func(t *testing.T) {
		c, rec := newContext()
		fields := usecase.FieldErrors{"amount": {"Please enter an amount greater than $0."}}

		require.NoError(t, ActionResult(c, usecase.Invalid(fields, "Missing or invalid fields.")))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "Missing or invalid fields.", body.Error.Message)
		assert.Equal(t, map[string]any{"amount": []any{"Please enter an amount greater than $0."}}, body.Error.Details)
	})

	t.Run("server error", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, ActionResult(c, usecase.Failed("Database error: failed to create invoice.")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"SERVER_ERROR","message":"Database error: failed to create invoice."},"meta":{"request_id":"req-1"}}`, rec.Body.String())
	})

	t.Run("nil result is handed to the error handler", func(t *testing.T) {
		c, _ := newContext()

		assert.ErrorIs(t, ActionResult(c, nil), domainerrors.ErrInternalError)
	})
}

func TestError_HidesDetailsForServerErrors(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error.", "pq: relation missing"))

	assert.NotContains(t, rec.Body.String(), "relation")
}
