package employee

import (
	"go-payledger/internal/middleware"
	"go-payledger/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.POST("",
			rbac.Authorize(rbacService, "employee", "write"),
			middleware.RateLimitByUser(1, 3),
			handler.Create,
		)
		employees.GET("",
			rbac.Authorize(rbacService, "employee", "read"),
			handler.GetAll,
		)
		employees.GET("/options",
			rbac.Authorize(rbacService, "employee", "read"),
			handler.GetOptions,
		)
		employees.GET("/:id",
			rbac.Authorize(rbacService, "employee", "read"),
			handler.GetByID,
		)
		employees.PUT("/:id",
			rbac.Authorize(rbacService, "employee", "write"),
			handler.Update,
		)
		employees.DELETE("/:id",
			rbac.Authorize(rbacService, "employee", "write"),
			handler.Deactivate,
		)
	}
}
