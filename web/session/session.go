package session

import (
	"github.com/KyryloYefremov/go-blog/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUserId = "LOGIN_USER_ID"

// SetLoginUser binds the session to the given user's id.
func SetLoginUser(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Set(loginUserId, user.Id)
	return s.Save()
}

// GetUserId resolves the logged-in user id from the session. The second
// return value is false for anonymous sessions.
func GetUserId(c *gin.Context) (int, bool) {
	s := sessions.Default(c)
	if obj := s.Get(loginUserId); obj != nil {
		if id, ok := obj.(int); ok {
			return id, true
		}
	}
	return 0, false
}

func IsLogin(c *gin.Context) bool {
	_, ok := GetUserId(c)
	return ok
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}

// AddFlash stores a one-shot message that survives the next redirect.
func AddFlash(c *gin.Context, msg string) error {
	s := sessions.Default(c)
	s.AddFlash(msg)
	return s.Save()
}

// TakeFlashes returns pending flash messages and clears them.
func TakeFlashes(c *gin.Context) []string {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) > 0 {
		if err := s.Save(); err != nil {
			return nil
		}
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
