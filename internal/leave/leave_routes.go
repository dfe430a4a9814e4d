package leave

import (
	"go-payledger/internal/middleware"
	"go-payledger/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	group := r.Group("/leaves")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("",
			rbac.Authorize(rbacService, "leave", "write"),
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)
		group.GET("",
			rbac.Authorize(rbacService, "leave", "read"),
			handler.GetAll,
		)
		group.GET("/:id",
			rbac.Authorize(rbacService, "leave", "read"),
			handler.GetByID,
		)
		group.PATCH("/:id/submit",
			rbac.Authorize(rbacService, "leave", "write"),
			handler.Submit,
		)
		group.PATCH("/:id/cancel",
			rbac.Authorize(rbacService, "leave", "write"),
			handler.Cancel,
		)
		group.PATCH("/:id/approve",
			rbac.Authorize(rbacService, "leave", "approve"),
			handler.Approve,
		)
		group.PATCH("/:id/reject",
			rbac.Authorize(rbacService, "leave", "approve"),
			handler.Reject,
		)
	}
}
