package auth

import (
	"go-payledger/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimitByIP(0.1, 2), handler.RegisterOwner)
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/staff",
			middleware.AuthMiddleware(),
			middleware.RateLimitByUser(0.5, 2),
			handler.RegisterStaff,
		)
	}
}
