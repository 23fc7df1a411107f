package controller

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/KyryloYefremov/go-blog/config"
	"github.com/KyryloYefremov/go-blog/web/middleware"
	"github.com/KyryloYefremov/go-blog/web/session"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// getPathId parses the numeric :id path parameter. An unparsable id
// aborts the request with 404.
func getPathId(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// html renders an HTML template with the provided data and title. The
// resolved current user and any pending flash messages are always made
// available to the page.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["user"] = middleware.UserFrom(c)
	data["flashes"] = session.TakeFlashes(c)
	c.HTML(http.StatusOK, name, getContext(data))
}

// getContext adds version and other context data to the provided gin.H.
func getContext(h gin.H) gin.H {
	a := gin.H{
		"cur_ver": config.GetVersion(),
	}
	for key, value := range h {
		a[key] = value
	}
	return a
}
