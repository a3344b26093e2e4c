// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"petstar/internal/delivery/http/middleware"
	"petstar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	ContentHandler      *handler.ContentHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	contentHandler      *handler.ContentHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		contentHandler:      params.ContentHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public routes
	{
		api.POST("/register", r.authHandler.Register)
		api.POST("/login", r.authHandler.Login)
		api.POST("/restorePassword", r.authHandler.RequestPasswordReset)
		api.PUT("/restorePassword", r.authHandler.RedeemPasswordReset)
	}

	// Routes that require a valid session token
	authed := api.Group("", r.authMiddleware.Authenticate)
	{
		authed.PUT("/changePassword", r.authHandler.ChangePassword)

		authed.GET("/user", r.userHandler.GetProfile)
		authed.PUT("/user", r.userHandler.UpdateProfile)

		authed.POST("/post", r.contentHandler.CreatePost)
		authed.GET("/singlePosts", r.contentHandler.ListOwnPosts)
		authed.GET("/allPosts", r.contentHandler.ListAllPosts)
		authed.POST("/commentPost/:postId", r.contentHandler.AddComment)
		authed.GET("/commentPost/:postId", r.contentHandler.ListComments)

		authed.POST("/forumTopic", r.contentHandler.CreateTopic)
		authed.GET("/singleForumTopics", r.contentHandler.ListOwnTopics)
		authed.GET("/allForumTopics", r.contentHandler.ListAllTopics)
		authed.POST("/topicResponse/:topicId", r.contentHandler.AddResponse)
		authed.GET("/topicResponse/:topicId", r.contentHandler.ListResponses)
	}
}
