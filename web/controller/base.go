// Package controller provides the HTTP request handlers for the blog:
// post listing and detail pages, comments, authentication flows, and the
// admin-only post management routes.
package controller

import (
	"net/http"

	"github.com/KyryloYefremov/go-blog/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers.
type BaseController struct{}

// requireLogin flashes a notice and sends anonymous callers to the login
// page. Returns false when the request was redirected.
func (a *BaseController) requireLogin(c *gin.Context, msg string) bool {
	if !session.IsLogin(c) {
		if err := session.AddFlash(c, msg); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return false
		}
		c.Redirect(http.StatusFound, "/login")
		return false
	}
	return true
}
