package middleware

import (
	"log/slog"

	deliverycontext "acorn/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every request with an id and scopes a logger to it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process reuses a well-formed X-Request-Id from the client and mints one otherwise.
// The id is echoed on the response and bound, with its logger, to the request context
// so usecases and published invoice events carry it.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := deliverycontext.AcceptRequestID(req.Header.Get(deliverycontext.HeaderXRequestID))
		if requestID == "" {
			requestID = deliverycontext.NewRequestID()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		scoped := m.logger.With(slog.String("request_id", requestID))
		c.SetRequest(req.WithContext(deliverycontext.WithRequestScope(req.Context(), requestID, scoped)))

		return next(c)
	}
}
