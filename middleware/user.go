package middleware

import (
	"main/utils"

	"github.com/gin-gonic/gin"
)

// UserMiddleware resolves the caller's identity. Authentication itself
// happens upstream (the gateway terminates it); this layer only requires the
// forwarded user id and makes it available to handlers. Every piece of data
// below this point is scoped by that id.
func UserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			utils.Unauthorized(c, "Missing user ID")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
