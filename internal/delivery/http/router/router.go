// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chatop/internal/delivery/http/middleware"
	"chatop/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	RentalHandler  *handler.RentalHandler
	MessageHandler *handler.MessageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	rentalHandler  *handler.RentalHandler
	messageHandler *handler.MessageHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		rentalHandler:  params.RentalHandler,
		messageHandler: params.MessageHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	// Auth routes, registration and login stay public
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.GET("/me", r.userHandler.Me, r.authMiddleware.RequireAuthenticated)
	}

	// User routes that require authentication
	userGroup := api.Group("/user")
	userGroup.Use(r.authMiddleware.RequireAuthenticated)
	{
		userGroup.GET("/:id", r.userHandler.GetUser)
	}

	// Rental routes that require authentication
	rentalGroup := api.Group("/rentals")
	rentalGroup.Use(r.authMiddleware.RequireAuthenticated)
	{
		rentalGroup.GET("", r.rentalHandler.List)
		rentalGroup.GET("/:id", r.rentalHandler.Get)
		rentalGroup.POST("", r.rentalHandler.Create)
		rentalGroup.PUT("/:id", r.rentalHandler.Update)
	}

	// Message routes that require authentication
	messageGroup := api.Group("/messages")
	messageGroup.Use(r.authMiddleware.RequireAuthenticated)
	{
		messageGroup.POST("", r.messageHandler.Create)
	}
}
