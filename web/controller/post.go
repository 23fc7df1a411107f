package controller

import (
	"fmt"
	"net/http"

	"github.com/KyryloYefremov/go-blog/database"
	"github.com/KyryloYefremov/go-blog/database/model"
	"github.com/KyryloYefremov/go-blog/logger"
	"github.com/KyryloYefremov/go-blog/web/middleware"
	"github.com/KyryloYefremov/go-blog/web/service"
	"github.com/KyryloYefremov/go-blog/web/session"

	"github.com/gin-gonic/gin"
)

// PostForm represents the create/edit post request structure.
type PostForm struct {
	Title    string `form:"title" binding:"required"`
	Subtitle string `form:"subtitle" binding:"required"`
	ImgUrl   string `form:"img_url" binding:"required,url"`
	Body     string `form:"body" binding:"required"`
}

// CommentForm represents a submitted comment.
type CommentForm struct {
	Comment string `form:"comment" binding:"required"`
}

// PostController handles the post detail page, comments, and the
// admin-only post management routes.
type PostController struct {
	BaseController

	postService    service.PostService
	commentService service.CommentService
}

func NewPostController(g *gin.RouterGroup) *PostController {
	a := &PostController{}
	a.initRouter(g)
	return a
}

func (a *PostController) initRouter(g *gin.RouterGroup) {
	g.GET("/post/:id", a.showPost)
	g.POST("/post/:id", a.addComment)

	admin := g.Group("/", middleware.AdminOnly())
	admin.GET("/new-post", a.newPostPage)
	admin.POST("/new-post", a.createPost)
	admin.GET("/edit-post/:id", a.editPostPage)
	admin.POST("/edit-post/:id", a.updatePost)
	admin.GET("/delete/:id", a.deletePost)
}

// loadPost fetches the post for the :id path parameter, aborting with
// 404 when the id does not resolve.
func (a *PostController) loadPost(c *gin.Context) (*model.Post, bool) {
	id, ok := getPathId(c)
	if !ok {
		return nil, false
	}
	post, err := a.postService.GetPost(id)
	if database.IsNotFound(err) {
		c.AbortWithStatus(http.StatusNotFound)
		return nil, false
	} else if err != nil {
		logger.Warning("load post err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return nil, false
	}
	return post, true
}

// showPost renders the post together with all of its comments.
func (a *PostController) showPost(c *gin.Context) {
	post, ok := a.loadPost(c)
	if !ok {
		return
	}
	comments, err := a.commentService.GetComments(post.Id)
	if err != nil {
		logger.Warning("list comments err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	html(c, "post.html", post.Title, gin.H{
		"post":     post,
		"comments": comments,
	})
}

// addComment inserts a comment linked to the current user and this post,
// then redirects back to the detail page. Anonymous callers are sent to
// the login page and no comment is created.
func (a *PostController) addComment(c *gin.Context) {
	post, ok := a.loadPost(c)
	if !ok {
		return
	}

	if !a.requireLogin(c, "Please log in to leave comments on blog posts!") {
		return
	}
	user := middleware.UserFrom(c)

	var form CommentForm
	if err := c.ShouldBind(&form); err != nil {
		if err := session.AddFlash(c, "Comment text is required."); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.Id))
		return
	}

	if _, err := a.commentService.AddComment(form.Comment, user.Id, post.Id); err != nil {
		logger.Error("add comment err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.Id))
}

func (a *PostController) newPostPage(c *gin.Context) {
	html(c, "make-post.html", "New Post", nil)
}

// createPost creates a post authored by the current admin user, stamped
// with the current calendar date.
func (a *PostController) createPost(c *gin.Context) {
	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "make-post.html", "New Post", gin.H{
			"error": "All fields are required and the image URL must be valid.",
			"form":  form,
		})
		return
	}

	user := middleware.UserFrom(c)
	post, err := a.postService.CreatePost(form.Title, form.Subtitle, form.Body, form.ImgUrl, user.Id)
	if database.IsDuplicate(err) {
		html(c, "make-post.html", "New Post", gin.H{
			"error": "A post with this title already exists.",
			"form":  form,
		})
		return
	} else if err != nil {
		logger.Error("create post err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	logger.Infof("post %d created by %s", post.Id, user.Email)
	c.Redirect(http.StatusFound, "/")
}

// editPostPage pre-populates the post form with the current values.
func (a *PostController) editPostPage(c *gin.Context) {
	post, ok := a.loadPost(c)
	if !ok {
		return
	}
	html(c, "make-post.html", "Edit Post", gin.H{
		"is_edit": true,
		"form": PostForm{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			ImgUrl:   post.ImgUrl,
			Body:     post.Body,
		},
		"post": post,
	})
}

// updatePost overwrites the post's fields and redirects to its detail
// page. The author is reset to the current admin user; the original
// creation date is kept.
func (a *PostController) updatePost(c *gin.Context) {
	post, ok := a.loadPost(c)
	if !ok {
		return
	}

	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "make-post.html", "Edit Post", gin.H{
			"error":   "All fields are required and the image URL must be valid.",
			"is_edit": true,
			"form":    form,
			"post":    post,
		})
		return
	}

	user := middleware.UserFrom(c)
	post.Title = form.Title
	post.Subtitle = form.Subtitle
	post.ImgUrl = form.ImgUrl
	post.Body = form.Body
	post.AuthorId = user.Id

	if err := a.postService.UpdatePost(post); err != nil {
		if database.IsDuplicate(err) {
			html(c, "make-post.html", "Edit Post", gin.H{
				"error":   "A post with this title already exists.",
				"is_edit": true,
				"form":    form,
				"post":    post,
			})
			return
		}
		logger.Error("update post err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.Id))
}

// deletePost removes the post and its comments, then redirects to the listing.
func (a *PostController) deletePost(c *gin.Context) {
	post, ok := a.loadPost(c)
	if !ok {
		return
	}
	if err := a.postService.DeletePost(post.Id); err != nil {
		logger.Error("delete post err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	logger.Infof("post %d deleted", post.Id)
	c.Redirect(http.StatusFound, "/")
}
