package middleware

import (
	"github.com/gin-gonic/gin"

	"boutique/store"
)

// SessionHeader carries the shopper's session token. The middleware echoes
// the token back so a first request without one learns its session id.
const SessionHeader = "X-Session-ID"

// SessionStoreKey is the gin context key the session's store is stored under
const SessionStoreKey = "sessionStore"

// Session attaches the shopper's state store to the request context,
// creating a new session when the token is missing or unknown
func Session(sessions *store.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, s := sessions.Ensure(c.GetHeader(SessionHeader))
		c.Set(SessionStoreKey, s)
		c.Header(SessionHeader, token)
		c.Next()
	}
}

// SessionStore returns the store placed in the context by Session
func SessionStore(c *gin.Context) *store.Store {
	return c.MustGet(SessionStoreKey).(*store.Store)
}
