package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionKey = "fintrack-session"

// Session identifies the user a request is made by.
type Session struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// SetSession stores the session in the request context.
func SetSession(c *gin.Context, s Session) {
	c.Set(sessionKey, s)
}

// SessionFrom returns the session of an authenticated request.
// ok is false if the request passed no authentication middleware.
func SessionFrom(c *gin.Context) (s Session, ok bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return Session{}, false
	}

	s, ok = v.(Session)
	return s, ok
}
