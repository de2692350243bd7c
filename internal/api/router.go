package api

import (
	"github.com/gin-gonic/gin"

	"github.com/bancoideias/backend-go/internal/handler"
	"github.com/bancoideias/backend-go/internal/middleware"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	ideaHandler *handler.IdeaHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter middleware.RateLimiter,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.Use(middleware.RequestID())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth routes (public, rate limited)
	authGroup := r.Group("/auth")
	authGroup.Use(rateLimiter.LimitAuth())
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}
	r.GET("/auth/me", authMiddleware.RequireAuth(), authHandler.Me)

	// Idea routes. Not scoped per user in the current design.
	ideias := r.Group("/ideias")
	{
		ideias.POST("", ideaHandler.Create)
		ideias.GET("", ideaHandler.List)
		ideias.GET("/:id", ideaHandler.GetByID)
		ideias.PUT("/:id", ideaHandler.Update)
		ideias.DELETE("/:id", ideaHandler.Delete)
	}

	return r
}
