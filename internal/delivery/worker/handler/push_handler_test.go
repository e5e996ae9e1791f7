package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"acorn/config"
	"acorn/internal/domain/service"
	"acorn/internal/infra/metrics"
	"acorn/internal/infra/pubsub"
	mockSvc "acorn/internal/mocks/service"
	"acorn/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

const invoiceID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"

type pushFixtures struct {
	cache   *mockSvc.MockViewCache
	handler *PushHandler
}

func createTestPushHandler(t *testing.T, cfg *config.Config) *pushFixtures {
	cache := mockSvc.NewMockViewCache(t)

	return &pushFixtures{
		cache: cache,
		handler: NewPushHandler(PushHandlerParams{
			Config:  cfg,
			Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
			Cache:   cache,
			Metrics: metrics.New(),
		}),
	}
}

func localConfig() *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: pubsub.ProviderLocal}}
	cfg.Env.Env = config.EnvLocal

	return cfg
}

func pushBody(t *testing.T, event *service.InvoiceEvent, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/local/subscriptions/invoice-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func newPushContext(body []byte) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_RevalidatesAffectedViews(t *testing.T) {
	tests := []struct {
		eventType service.InvoiceEventType
		paths     []string
	}{
		{service.InvoiceEventCreated, []string{usecase.PathInvoices, usecase.PathDashboard}},
		{service.InvoiceEventUpdated, []string{usecase.PathInvoices, usecase.PathInvoices + "/" + invoiceID, usecase.PathDashboard}},
		{service.InvoiceEventDeleted, []string{usecase.PathInvoices, usecase.PathInvoices + "/" + invoiceID, usecase.PathDashboard}},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			f := createTestPushHandler(t, localConfig())
			for _, path := range tt.paths {
				f.cache.EXPECT().Revalidate(path).Return().Once()
			}

			body := pushBody(t, &service.InvoiceEvent{
				Type:       tt.eventType,
				InvoiceID:  invoiceID,
				OccurredAt: time.Now().UTC(),
			}, nil)
			c, rec := newPushContext(body)

			require.NoError(t, f.handler.HandlePush(c))

			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	t.Run("data is not base64", func(t *testing.T) {
		f := createTestPushHandler(t, localConfig())
		c, rec := newPushContext([]byte(`{"message":{"data":"%%%"}}`))

		require.NoError(t, f.handler.HandlePush(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("data is not an event", func(t *testing.T) {
		f := createTestPushHandler(t, localConfig())
		data := base64.StdEncoding.EncodeToString([]byte("not json"))
		c, rec := newPushContext([]byte(`{"message":{"data":"` + data + `"}}`))

		require.NoError(t, f.handler.HandlePush(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown event type is acknowledged without revalidation", func(t *testing.T) {
		f := createTestPushHandler(t, localConfig())
		body := pushBody(t, &service.InvoiceEvent{Type: "invoice.archived", InvoiceID: invoiceID}, nil)
		c, rec := newPushContext(body)

		require.NoError(t, f.handler.HandlePush(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h := &PushHandler{}
	event := &service.InvoiceEvent{RequestID: "from-event"}

	var msg pubsub.PushMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	assert.Equal(t, "from-attributes", h.extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = map[string]string{"request_id": "bad id\nwith newline"}
	assert.Equal(t, "from-event", h.extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(context.Background(), &msg, event))

	generated := h.extractRequestID(context.Background(), &msg, &service.InvoiceEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestPushHandler_VerifiesGoogleTokens(t *testing.T) {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: pubsub.ProviderGoogle},
		Worker: &config.WorkerConfig{PushAudience: "https://worker.example.com/push"},
	}
	cfg.Env.Env = "production"

	body := pushBody(t, &service.InvoiceEvent{Type: service.InvoiceEventCreated, InvoiceID: invoiceID}, nil)

	t.Run("missing token", func(t *testing.T) {
		f := createTestPushHandler(t, cfg)
		c, rec := newPushContext(body)

		require.NoError(t, f.handler.HandlePush(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		f := createTestPushHandler(t, cfg)
		f.handler.validate = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			return nil, errors.New("signature mismatch")
		}
		c, rec := newPushContext(body)
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer forged")

		require.NoError(t, f.handler.HandlePush(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		f := createTestPushHandler(t, cfg)
		f.handler.validate = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}
		c, rec := newPushContext(body)
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer tok")

		require.NoError(t, f.handler.HandlePush(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token with configured audience", func(t *testing.T) {
		f := createTestPushHandler(t, cfg)
		var gotAudience string
		f.handler.validate = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		f.cache.EXPECT().Revalidate(usecase.PathInvoices).Return()
		f.cache.EXPECT().Revalidate(usecase.PathDashboard).Return()

		c, rec := newPushContext(body)
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer tok")

		require.NoError(t, f.handler.HandlePush(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://worker.example.com/push", gotAudience)
	})
}
