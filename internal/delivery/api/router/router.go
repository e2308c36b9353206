// Package router wires the API routes to their handlers.
package router

import (
	"bookclub/internal/delivery/api/middleware"
	"bookclub/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	UploadHandler  *handler.UploadHandler
	TopicHandler   *handler.TopicHandler
	PostHandler    *handler.PostHandler
	LiveHandler    *handler.LiveHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	uploadHandler  *handler.UploadHandler
	topicHandler   *handler.TopicHandler
	postHandler    *handler.PostHandler
	liveHandler    *handler.LiveHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		uploadHandler:  params.UploadHandler,
		topicHandler:   params.TopicHandler,
		postHandler:    params.PostHandler,
		liveHandler:    params.LiveHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Local email and password sign-in
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/me", r.userHandler.GetMe)
	apiV1.PUT("/me", r.userHandler.UpdateMe)
	apiV1.GET("/users", r.userHandler.SearchUsers)
	apiV1.PUT("/admin/users/:id/role", r.userHandler.AssignRole)
	apiV1.POST("/uploads", r.uploadHandler.UploadImage)

	topicsGroup := apiV1.Group("/topics")
	{
		topicsGroup.GET("", r.topicHandler.ListTopics)
		topicsGroup.POST("", r.topicHandler.CreateTopic)
		topicsGroup.GET("/live", r.liveHandler.Stream)
	}

	topicGroup := topicsGroup.Group("/:id", middleware.ScopeTopic)
	{
		topicGroup.GET("", r.topicHandler.GetTopic)
		topicGroup.PUT("", r.topicHandler.UpdateTopic)
		topicGroup.DELETE("", r.topicHandler.DeleteTopic)
		topicGroup.GET("/permissions", r.topicHandler.Permissions)
		topicGroup.GET("/share.png", r.topicHandler.ShareCode)
		topicGroup.POST("/members", r.topicHandler.AddMember)
		topicGroup.DELETE("/members/:role/:userId", r.topicHandler.RemoveMember)
		topicGroup.POST("/reactions/:kind", r.topicHandler.ToggleReaction)
	}

	postsGroup := topicGroup.Group("/posts")
	{
		postsGroup.GET("", r.postHandler.ListPosts)
		postsGroup.POST("", r.postHandler.CreatePost)
		postsGroup.GET("/:postId", r.postHandler.GetPost)
		postsGroup.PUT("/:postId", r.postHandler.UpdatePost)
		postsGroup.DELETE("/:postId", r.postHandler.DeletePost)
		postsGroup.GET("/:postId/permissions", r.postHandler.Permissions)
	}
}
