package report

import (
	"go-payledger/internal/middleware"
	"go-payledger/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	group := r.Group("/reports")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("/monthly",
			rbac.Authorize(rbacService, "report", "read"),
			handler.MonthlySummary,
		)
	}
}
