package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"acorn/config"
	deliverycontext "acorn/internal/delivery/context"
	domainerrors "acorn/internal/domain/errors"
	"acorn/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionCookie reads and writes the session token cookie.
type SessionCookie struct {
	name   string
	secure bool
}

func NewSessionCookie(cfg *config.Config) *SessionCookie {
	return &SessionCookie{
		name:   cfg.Auth.CookieName,
		secure: cfg.Auth.CookieSecure,
	}
}

// Read returns the raw session token, or "" when the cookie is absent.
func (s *SessionCookie) Read(c echo.Context) string {
	cookie, err := c.Cookie(s.name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// Write sets an HttpOnly cookie that expires with the session.
func (s *SessionCookie) Write(c echo.Context, session *usecase.IssuedSession) {
	c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *SessionCookie) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Cookie *SessionCookie
	Logger *slog.Logger
}

// SessionMiddleware gates routes on the session cookie.
type SessionMiddleware struct {
	authUC usecase.AuthUsecase
	cookie *SessionCookie
	logger *slog.Logger
}

func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		authUC: params.AuthUC,
		cookie: params.Cookie,
		logger: params.Logger,
	}
}

// RequireSession sends visitors without a valid session to the login page.
// A session that cannot be checked because the store failed is an error, and the cookie is kept.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.cookie.Read(c)
		if token == "" {
			return c.Redirect(http.StatusSeeOther, usecase.PathLogin)
		}

		user, err := m.authUC.ResolveSession(c.Request().Context(), token)
		if err != nil {
			if !errors.Is(err, domainerrors.ErrSessionInvalid) {
				return errors.Wrap(err, "failed to resolve session")
			}

			m.logger.DebugContext(c.Request().Context(), "Session rejected", slog.Any("error", err))
			m.cookie.Clear(c)

			return c.Redirect(http.StatusSeeOther, usecase.PathLogin)
		}

		deliverycontext.SetSessionUser(c, user)

		return next(c)
	}
}

// RedirectIfAuthenticated keeps signed-in users away from the login and signup pages.
func (m *SessionMiddleware) RedirectIfAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.cookie.Read(c)
		if token == "" {
			return next(c)
		}

		if _, err := m.authUC.ResolveSession(c.Request().Context(), token); err == nil {
			return c.Redirect(http.StatusSeeOther, usecase.PathDashboard)
		}

		return next(c)
	}
}
