package middleware

import (
	"net/http"

	"github.com/KyryloYefremov/go-blog/database"
	"github.com/KyryloYefremov/go-blog/database/model"
	"github.com/KyryloYefremov/go-blog/logger"
	"github.com/KyryloYefremov/go-blog/web/service"
	"github.com/KyryloYefremov/go-blog/web/session"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "CURRENT_USER"

// CurrentUser resolves the session's user id to a loaded user record and
// stores it in the request context. A session pointing at a user that no
// longer exists fails the request with 404 instead of silently treating
// the caller as anonymous.
func CurrentUser() gin.HandlerFunc {
	userService := service.UserService{}
	return func(c *gin.Context) {
		uid, ok := session.GetUserId(c)
		if !ok {
			c.Next()
			return
		}
		user, err := userService.GetUser(uid)
		if database.IsNotFound(err) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		} else if err != nil {
			logger.Warning("load session user err:", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// UserFrom returns the resolved current user, or nil for anonymous requests.
func UserFrom(c *gin.Context) *model.User {
	if obj, exists := c.Get(currentUserKey); exists {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}
