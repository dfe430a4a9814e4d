package audit

import (
	"go-payledger/internal/middleware"
	"go-payledger/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	logs := r.Group("/audit-logs")
	logs.Use(middleware.AuthMiddleware())
	{
		logs.GET("",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(rbacService, "audit", "read"),
			handler.GetAll,
		)
	}
}
