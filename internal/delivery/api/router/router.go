// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatekeeper/internal/delivery/api/middleware"
	"gatekeeper/internal/delivery/api/router/handler"
	"gatekeeper/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AdminHandler   *handler.AdminHandler
	WebhookHandler *handler.WebhookHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	adminHandler   *handler.AdminHandler
	webhookHandler *handler.WebhookHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		adminHandler:   params.AdminHandler,
		webhookHandler: params.WebhookHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the routes. CSRF and rate limiting run globally before these.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/csrf", r.authHandler.CSRFToken)
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// API routes require an access token
	apiGroup := e.Group("/api", r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/me", r.authHandler.Me)
	}

	// Operator routes additionally require the ADMIN role
	adminGroup := apiGroup.Group("/admin", r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/security/events", r.adminHandler.ListEvents)
		adminGroup.GET("/security/metrics", r.adminHandler.Metrics)
		adminGroup.POST("/principals/:id/revoke", r.adminHandler.RevokeSubject)
	}

	// Third-party callbacks, exempt from CSRF
	e.POST("/webhooks/*", r.webhookHandler.Receive)
}
