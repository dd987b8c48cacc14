// Package router contains routing and server setup for the public HTTP
// delivery.
package router

import (
	"directory/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CategoryHandler *handler.CategoryHandler
	BusinessHandler *handler.BusinessHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	categoryHandler *handler.CategoryHandler
	businessHandler *handler.BusinessHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		categoryHandler: params.CategoryHandler,
		businessHandler: params.BusinessHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Category pages
	categoriesGroup := e.Group("/categories")
	{
		categoriesGroup.GET("/:category", r.categoryHandler.Normalize)
		categoriesGroup.GET("/:category/businesses", r.categoryHandler.Browse)
	}

	// Business registration and maintenance
	businessesGroup := e.Group("/businesses")
	{
		businessesGroup.POST("", r.businessHandler.Register)
		businessesGroup.GET("/:id", r.businessHandler.Get)
		businessesGroup.PUT("/:id", r.businessHandler.Update)
		businessesGroup.PUT("/:id/service-area", r.businessHandler.SetServiceArea)
	}
}
