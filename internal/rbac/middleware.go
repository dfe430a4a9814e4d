package rbac

import (
	"net/http"

	"go-payledger/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Authorize is a middleware factory checking the caller's role (set by the
// JWT middleware) against the static policy table.
func Authorize(service Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "forbidden", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
