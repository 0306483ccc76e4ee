package authorization

import (
	"github.com/gin-gonic/gin"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("user_role")
		if userRole != string(RoleAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessOwnedResource reports whether a user may see a resource owned by
// ownerUsername. Admins see everything; students only their own.
func CanAccessOwnedResource(username string, role UserRole, ownerUsername string) bool {
	if role.IsAdmin() {
		return true
	}
	return username == ownerUsername
}
