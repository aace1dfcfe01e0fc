package controllers

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/DELMUS1M/SPARKLY-STORE/logger"
	"github.com/DELMUS1M/SPARKLY-STORE/middleware"
	"github.com/DELMUS1M/SPARKLY-STORE/session"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Initialize("development")
	os.Exit(m.Run())
}

// newTestRouter returns a router with the given session pre-resolved, the
// way the session middleware would.
func newTestRouter(sess *session.Session) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.SessionKey, sess)
		c.Next()
	})
	return r
}

func newTestSession() *session.Session {
	return session.NewStore().GetOrCreate("controller-test")
}
