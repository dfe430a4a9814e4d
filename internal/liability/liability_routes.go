package liability

import (
	"go-payledger/internal/middleware"
	"go-payledger/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	group := r.Group("/liabilities")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("",
			rbac.Authorize(rbacService, "liability", "write"),
			middleware.RateLimitByUser(1, 3),
			handler.Create,
		)
		group.PATCH("/:id/decision",
			rbac.Authorize(rbacService, "liability", "approve"),
			handler.Decide,
		)
		group.DELETE("/:id",
			rbac.Authorize(rbacService, "liability", "write"),
			handler.Delete,
		)
		group.GET("",
			rbac.Authorize(rbacService, "liability", "read"),
			handler.GetAll,
		)
		group.GET("/:id",
			rbac.Authorize(rbacService, "liability", "read"),
			handler.GetByID,
		)
	}
}
