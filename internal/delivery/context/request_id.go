// Package context carries per-request values between echo handlers and the usecases:
// the request id, the logger scoped to it, and the signed-in principal.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from clients and echoed on every response.
const HeaderXRequestID = "X-Request-Id"

const (
	echoKeyRequestID = "request_id"

	maxRequestIDLength = 64
)

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
)

// NewRequestID returns a fresh request id.
func NewRequestID() string {
	return uuid.NewString()
}

// AcceptRequestID returns raw if it is a usable request id, otherwise "".
// Ids end up in logs and event attributes, so only short tokens of letters, digits, '-', '_' and '.' pass.
func AcceptRequestID(raw string) string {
	if raw == "" || len(raw) > maxRequestIDLength {
		return ""
	}

	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return ""
		}
	}

	return raw
}

// SetRequestID records the request id on c for the response envelope.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestID returns the request id of c, or "" when the request id middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// WithRequestScope binds requestID and the logger tagged with it to ctx.
func WithRequestScope(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	return context.WithValue(ctx, loggerKey, logger)
}

// GetRequestIDFromContext returns the request id bound by WithRequestScope, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
