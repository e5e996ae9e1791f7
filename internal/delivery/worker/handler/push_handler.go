package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"acorn/config"
	deliverycontext "acorn/internal/delivery/context"
	"acorn/internal/domain/service"
	"acorn/internal/infra/metrics"
	"acorn/internal/infra/pubsub"
	"acorn/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const (
	outcomeProcessed = "processed"
	outcomeRejected  = "rejected"
)

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying invoice events
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	logger         *slog.Logger
	cache          service.ViewCache
	metrics        *metrics.Metrics
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Cache   service.ViewCache
	Metrics *metrics.Metrics
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google pushes carry a signed token; local development posts directly.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.Env.Env != config.EnvLocal

	var audience string
	if params.Config.Worker != nil {
		audience = params.Config.Worker.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		cache:          params.Cache,
		metrics:        params.Metrics,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed messages get 400; anything acknowledged gets 204 so Pub/Sub stops redelivering.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.WarnContext(ctx, "[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse push message", slog.Any("error", err))
		h.metrics.InvoiceEventReceived("", outcomeRejected)

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to decode message data", slog.Any("error", err))
		h.metrics.InvoiceEventReceived("", outcomeRejected)

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.InvoiceEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse invoice event", slog.Any("error", err))
		h.metrics.InvoiceEventReceived("", outcomeRejected)

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestScope(ctx, requestID, reqLogger)

	paths, err := affectedPaths(&event)
	if err != nil {
		reqLogger.WarnContext(ctx, "[Worker] Dropping invoice event",
			slog.String("type", string(event.Type)),
			slog.String("invoice_id", event.InvoiceID),
			slog.Any("error", err),
		)
		h.metrics.InvoiceEventReceived(string(event.Type), outcomeRejected)

		return c.NoContent(http.StatusNoContent)
	}

	for _, path := range paths {
		h.cache.Revalidate(path)
	}

	reqLogger.InfoContext(ctx, "[Worker] Invoice event processed",
		slog.String("type", string(event.Type)),
		slog.String("invoice_id", event.InvoiceID),
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.Time("occurred_at", event.OccurredAt),
	)
	h.metrics.InvoiceEventReceived(string(event.Type), outcomeProcessed)

	return c.NoContent(http.StatusNoContent)
}

// affectedPaths lists the named views an event makes stale.
func affectedPaths(event *service.InvoiceEvent) ([]string, error) {
	id, err := uuid.Parse(event.InvoiceID)
	if err != nil {
		return nil, errors.Wrap(err, "invoice id")
	}

	switch event.Type {
	case service.InvoiceEventCreated:
		return []string{usecase.PathInvoices, usecase.PathDashboard}, nil
	case service.InvoiceEventUpdated, service.InvoiceEventDeleted:
		return []string{usecase.PathInvoices, usecase.InvoiceDetailPath(id), usecase.PathDashboard}, nil
	default:
		return nil, errors.Errorf("unknown event type %q", event.Type)
	}
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.InvoiceEvent) string {
	if requestID := deliverycontext.AcceptRequestID(pushMsg.Message.Attributes["request_id"]); requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.AcceptRequestID(event.RequestID); requestID != "" {
		return requestID
	}

	// Set by RequestIDMiddleware from the X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return deliverycontext.NewRequestID()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
