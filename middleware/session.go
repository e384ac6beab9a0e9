package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/melochey/storefront-api/store"
)

// SessionCookie names the cookie that ties a browser to its cart.
const SessionCookie = "cart_session"

const sessionKey = "session"

// CartSession attaches the visitor's session to the request context,
// issuing a fresh session cookie on first contact. Carts are anonymous
// and live only as long as the process.
func CartSession(sessions *store.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(SessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(sessionKey, sessions.Get(id))
		c.Next()
	}
}

// GetSession pulls the session stored by CartSession out of the context.
func GetSession(c *gin.Context) *store.Session {
	return c.MustGet(sessionKey).(*store.Session)
}
