package salary

import (
	"go-payledger/internal/middleware"
	"go-payledger/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	group := r.Group("/salaries")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("/calculate/:employeeId",
			rbac.Authorize(rbacService, "salary", "write"),
			middleware.Idempotency(rdb),
			middleware.RateLimitByUser(1, 3),
			handler.Calculate,
		)
		group.PATCH("/:id/payment",
			rbac.Authorize(rbacService, "salary", "write"),
			handler.SetPaid,
		)
		group.GET("",
			rbac.Authorize(rbacService, "salary", "read"),
			handler.GetAll,
		)
		group.GET("/:id",
			rbac.Authorize(rbacService, "salary", "read"),
			handler.GetByID,
		)
	}
}
