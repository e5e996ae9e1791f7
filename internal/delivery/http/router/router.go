// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"acorn/config"
	"acorn/internal/delivery/http/middleware"
	"acorn/internal/delivery/http/router/handler"
	"acorn/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	InvoiceHandler    *handler.InvoiceHandler
	CustomerHandler   *handler.CustomerHandler
	DashboardHandler  *handler.DashboardHandler
	SessionMiddleware *middleware.SessionMiddleware
	Metrics           *metrics.Metrics
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	invoiceHandler    *handler.InvoiceHandler
	customerHandler   *handler.CustomerHandler
	dashboardHandler  *handler.DashboardHandler
	sessionMiddleware *middleware.SessionMiddleware
	metrics           *metrics.Metrics
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		invoiceHandler:    params.InvoiceHandler,
		customerHandler:   params.CustomerHandler,
		dashboardHandler:  params.DashboardHandler,
		sessionMiddleware: params.SessionMiddleware,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Credential routes; signed-in users are sent to the dashboard
	limiter := middleware.NewCredentialRateLimiter(r.config)
	guest := r.sessionMiddleware.RedirectIfAuthenticated
	e.GET("/login", r.authHandler.LoginPage, guest)
	e.POST("/login", r.authHandler.Login, limiter, guest)
	e.GET("/signup", r.authHandler.SignupPage, guest)
	e.POST("/signup", r.authHandler.Signup, limiter, guest)
	e.POST("/logout", r.authHandler.Logout)

	// Everything under /dashboard requires a session
	dashboard := e.Group("/dashboard", r.sessionMiddleware.RequireSession)
	{
		dashboard.GET("", r.dashboardHandler.Overview)
	}

	invoices := dashboard.Group("/invoices")
	{
		invoices.GET("", r.invoiceHandler.List)
		invoices.POST("", r.invoiceHandler.Create)
		invoices.GET("/:id", r.invoiceHandler.Detail)
		invoices.POST("/:id", r.invoiceHandler.Update)
		invoices.PUT("/:id", r.invoiceHandler.Update)
		invoices.DELETE("/:id", r.invoiceHandler.Delete)
		invoices.GET("/:id/qrcode", r.invoiceHandler.QRCode)
	}

	customers := dashboard.Group("/customers")
	{
		customers.GET("", r.customerHandler.List)
		customers.GET("/options", r.customerHandler.Options)
	}
}
