package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionIDKey is the gin context key holding the resolved session id.
const SessionIDKey = "session_id"

const sessionCookieMaxAge = 30 * 24 * time.Hour

// Session resolves the client's session identity from a cookie, minting a
// fresh UUID on first contact. The id is opaque to everything downstream; it
// doubles as the cart's storage key.
func Session(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(cookieName, sid, int(sessionCookieMaxAge.Seconds()), "/", "", false, true)
		}
		c.Set(SessionIDKey, sid)
		c.Next()
	}
}

// SessionID returns the session identifier resolved for this request.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
