package middlewares

import (
	"net/http"
	"strings"

	"backend/entity"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and, when roles are given,
// requires the caller to hold one of them. Admin passes every role gate.
func AuthMiddleware(secret string, requiredRoles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)

		if len(requiredRoles) > 0 && !roleAllowed(claims.Role, requiredRoles) {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func roleAllowed(role entity.Role, required []entity.Role) bool {
	if role == entity.RoleAdmin {
		return true
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}
