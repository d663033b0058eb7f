package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// ContextKeyUser is the gin context key holding the session user
	ContextKeyUser = "auth_user"
)

// Middleware provides session-based authentication middleware
type Middleware struct {
	sessionStore *SessionStore
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(sessionStore *SessionStore) *Middleware {
	return &Middleware{sessionStore: sessionStore}
}

// RequireSession returns a middleware that loads the session user from the
// cookie and aborts with 401 when there is none.
func (m *Middleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := m.sessionStore.GetSessionFromCookie(c)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "not authenticated",
			})
			return
		}

		user, err := m.sessionStore.GetUserFromSession(sessionID)
		if err != nil || user == nil {
			m.sessionStore.ClearSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "session expired or invalid",
			})
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// GetUserFromContext retrieves the authenticated user from the context
func GetUserFromContext(c *gin.Context) *User {
	userVal, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	user, ok := userVal.(*User)
	if !ok {
		return nil
	}
	return user
}
