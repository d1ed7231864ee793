package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to accounts holding the given role. Must
// run after JWTAuthMiddleware, which sets the role in the context.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctxRole, exists := c.Get("role")
		if !exists || ctxRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient role for this operation"})
			return
		}
		c.Next()
	}
}
