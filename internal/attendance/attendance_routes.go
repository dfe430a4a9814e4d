package attendance

import (
	"go-payledger/internal/middleware"
	"go-payledger/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	group := r.Group("/attendance")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("/clock-in",
			rbac.Authorize(rbacService, "attendance", "write"),
			middleware.RateLimitByUser(0.5, 2),
			handler.ClockIn,
		)
		group.POST("/clock-out",
			rbac.Authorize(rbacService, "attendance", "write"),
			middleware.RateLimitByUser(0.5, 2),
			handler.ClockOut,
		)
		group.POST("",
			rbac.Authorize(rbacService, "employee", "write"),
			handler.Create,
		)
		group.GET("",
			rbac.Authorize(rbacService, "attendance", "read"),
			handler.GetAll,
		)
	}
}
