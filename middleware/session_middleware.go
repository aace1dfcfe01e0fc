package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DELMUS1M/SPARKLY-STORE/services"
	"github.com/DELMUS1M/SPARKLY-STORE/session"
)

// SessionKey is the key the resolved session is stored under in the gin
// context.
const SessionKey = "session"

// SessionMiddleware resolves the caller's session from the bearer token.
// Sessions are created lazily on first use of a valid token.
func SessionMiddleware(tokens *services.TokenService, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		sessionID, err := tokens.Parse(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(SessionKey, store.GetOrCreate(sessionID))
		c.Next()
	}
}

// GetSession returns the session resolved by SessionMiddleware.
func GetSession(c *gin.Context) *session.Session {
	return c.MustGet(SessionKey).(*session.Session)
}
