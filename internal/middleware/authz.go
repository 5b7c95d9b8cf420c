package middleware

import (
	"github.com/gin-gonic/gin"

	"etats/internal/authz"
)

// RequireManager rejects anonymous requests with 401 before checking the
// role, so a missing session never shows up as 403.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authz.CheckManager(CurrentUser(c)); err != nil {
			abort(c, err)
			return
		}
		c.Next()
	}
}
