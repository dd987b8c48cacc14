// Package router contains routing and server setup for the admin API
// delivery.
package router

import (
	"directory/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AdminHandler *handler.AdminHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	adminHandler *handler.AdminHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		adminHandler: params.AdminHandler,
	}
}

// RegisterRoutes sets up all the admin API routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	adminGroup := e.Group("/admin")
	{
		adminGroup.GET("/keys", r.adminHandler.InspectKeys)
		adminGroup.GET("/businesses/:id", r.adminHandler.DumpBusiness)
		adminGroup.DELETE("/businesses/:id", r.adminHandler.PurgeBusiness)
		adminGroup.DELETE("/businesses/:id/categories/:category", r.adminHandler.StripCategory)
	}
}
