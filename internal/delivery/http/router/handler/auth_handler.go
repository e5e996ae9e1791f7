package handler

import (
	"log/slog"
	"net/http"

	"acorn/internal/delivery/http/middleware"
	"acorn/internal/delivery/http/response"
	"acorn/internal/infra/metrics"
	"acorn/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC   usecase.AuthUsecase
	SignupUC usecase.SignupUsecase
	Cookie   *middleware.SessionCookie
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// AuthHandler serves login, signup and logout.
type AuthHandler struct {
	authUC   usecase.AuthUsecase
	signupUC usecase.SignupUsecase
	cookie   *middleware.SessionCookie
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:   params.AuthUC,
		signupUC: params.SignupUC,
		cookie:   params.Cookie,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

func (h *AuthHandler) LoginPage(c echo.Context) error {
	return response.Success(c, http.StatusOK, FormHint{Action: usecase.PathLogin, Fields: []string{"email", "password"}})
}

func (h *AuthHandler) SignupPage(c echo.Context) error {
	return response.Success(c, http.StatusOK, FormHint{Action: "/signup", Fields: []string{"name", "email", "password"}})
}

// Login handles the login form. Every failure answers with the same credentials error.
func (h *AuthHandler) Login(c echo.Context) error {
	input := usecase.LoginInput{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	outcome := h.authUC.Authenticate(c.Request().Context(), input, sessionMeta(c))

	return h.respond(c, "login", outcome)
}

// Signup handles the signup form and signs the new account in.
func (h *AuthHandler) Signup(c echo.Context) error {
	input := usecase.SignupInput{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	outcome := h.signupUC.SignUp(c.Request().Context(), input, sessionMeta(c))

	return h.respond(c, "signup", outcome)
}

// Logout revokes the current session, if any, and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	result := h.authUC.SignOut(c.Request().Context(), h.cookie.Read(c))
	h.cookie.Clear(c)
	h.metrics.ActionResult("logout", string(result.Kind))

	return response.ActionResult(c, result)
}

func (h *AuthHandler) respond(c echo.Context, action string, outcome *usecase.AuthOutcome) error {
	if outcome == nil || outcome.Result == nil {
		h.logger.ErrorContext(c.Request().Context(), "Empty auth outcome", slog.String("action", action))

		return response.InternalServerError(c, "SERVER_ERROR", "Something went wrong.")
	}

	if outcome.Session != nil {
		h.cookie.Write(c, outcome.Session)
	}
	h.metrics.ActionResult(action, string(outcome.Result.Kind))

	return response.ActionResult(c, outcome.Result)
}

func sessionMeta(c echo.Context) usecase.SessionMeta {
	return usecase.SessionMeta{
		UserAgent: c.Request().UserAgent(),
		IPAddress: c.RealIP(),
	}
}
