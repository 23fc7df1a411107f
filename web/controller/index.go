package controller

import (
	"net/http"

	"github.com/KyryloYefremov/go-blog/logger"
	"github.com/KyryloYefremov/go-blog/web/service"

	"github.com/gin-gonic/gin"
)

// IndexController handles the post listing and the static pages.
type IndexController struct {
	BaseController

	postService service.PostService
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/about", a.about)
	g.GET("/contact", a.contact)
}

// index renders all posts in storage order.
func (a *IndexController) index(c *gin.Context) {
	posts, err := a.postService.GetPosts()
	if err != nil {
		logger.Warning("list posts err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	html(c, "index.html", "Home", gin.H{
		"posts": posts,
	})
}

func (a *IndexController) about(c *gin.Context) {
	html(c, "about.html", "About Me", nil)
}

func (a *IndexController) contact(c *gin.Context) {
	html(c, "contact.html", "Contact Me", nil)
}
