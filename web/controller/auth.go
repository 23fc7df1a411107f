package controller

import (
	"errors"
	"net/http"

	"github.com/KyryloYefremov/go-blog/logger"
	"github.com/KyryloYefremov/go-blog/web/middleware"
	"github.com/KyryloYefremov/go-blog/web/service"
	"github.com/KyryloYefremov/go-blog/web/session"

	"github.com/gin-gonic/gin"
)

// RegisterForm represents the registration request structure.
type RegisterForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
}

// LoginForm represents the login request structure.
type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// AuthController handles registration, login and logout.
type AuthController struct {
	BaseController

	userService service.UserService
}

func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)

	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)

	g.GET("/logout", a.logout)
}

func (a *AuthController) registerPage(c *gin.Context) {
	html(c, "register.html", "Register", nil)
}

// register creates a new user and logs it in. Registering with an email
// that already exists never creates a second row; the caller is sent to
// the login page instead.
func (a *AuthController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "register.html", "Register", gin.H{
			"error": "Please fill in name, a valid email and a password of at least 8 characters.",
			"form":  form,
		})
		return
	}

	user, err := a.userService.Register(form.Name, form.Email, form.Password)
	if errors.Is(err, service.ErrEmailExists) {
		if err := session.AddFlash(c, "You've signed up with this email, log in instead!"); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Redirect(http.StatusFound, "/login")
		return
	} else if err != nil {
		logger.Error("register err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("Unable to save session:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	logger.Infof("%s registered, IP: %s", user.Email, getRemoteIp(c))
	c.Redirect(http.StatusFound, "/")
}

func (a *AuthController) loginPage(c *gin.Context) {
	html(c, "login.html", "Log In", nil)
}

// login verifies credentials and establishes a session. Unknown email
// and wrong password each flash their own message; neither changes state.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "login.html", "Log In", gin.H{
			"error": "Please enter a valid email and a password.",
			"form":  form,
		})
		return
	}

	user, err := a.userService.CheckUser(form.Email, form.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		if err := session.AddFlash(c, "That email does not exist, please try again."); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Redirect(http.StatusFound, "/login")
		return
	case errors.Is(err, service.ErrWrongPassword):
		logger.Warningf("wrong password for %q, IP: %s", form.Email, getRemoteIp(c))
		if err := session.AddFlash(c, "Incorrect password, please try again."); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Redirect(http.StatusFound, "/login")
		return
	case err != nil:
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("Unable to save session:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", user.Email, getRemoteIp(c))
	c.Redirect(http.StatusFound, "/")
}

// logout clears the session and redirects to the listing.
func (a *AuthController) logout(c *gin.Context) {
	if user := middleware.UserFrom(c); user != nil {
		logger.Infof("%s logged out", user.Email)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to clear session:", err)
	}
	c.Redirect(http.StatusFound, "/")
}
