package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/teamflow/teamflow-api/internal/constants"
)

// CurrentUser resolves the caller's identity from the session and stores it
// in the request context. The app has no real login flow; when the session
// carries no user id the configured demo user is assumed. Handlers and
// services receive the id explicitly instead of reading global state.
func CurrentUser(demoUserID uint64) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := demoUserID

		session := sessions.Default(c)
		if v := session.Get(constants.ContextKeyUserID); v != nil {
			if id, ok := toUserID(v); ok {
				userID = id
			}
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	return toUserID(v)
}

func toUserID(v interface{}) (uint64, bool) {
	switch id := v.(type) {
	case uint64:
		return id, true
	case uint:
		return uint64(id), true
	case int64:
		if id < 0 {
			return 0, false
		}
		return uint64(id), true
	case int:
		if id < 0 {
			return 0, false
		}
		return uint64(id), true
	default:
		return 0, false
	}
}
