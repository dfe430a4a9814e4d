package settings

import (
	"go-payledger/internal/middleware"
	"go-payledger/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	group := r.Group("/settings")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("",
			rbac.Authorize(rbacService, "settings", "read"),
			handler.Get,
		)
		group.PUT("",
			rbac.Authorize(rbacService, "settings", "write"),
			middleware.RateLimitByUser(1, 3),
			handler.Update,
		)
	}
}
