package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOnly aborts with 403 unless the request carries an authenticated
// session for the admin identity. The wrapped handlers never run for
// anonymous or non-admin callers.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := UserFrom(c)
		if user == nil || !user.IsAdmin() {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
