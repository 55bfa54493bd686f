package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionEmailKey is the session field holding the authenticated
// recruiter's email.
const SessionEmailKey = "userEmail"

// RequireAuth redirects unauthenticated requests to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		email, _ := session.Get(SessionEmailKey).(string)
		if email == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()

			return
		}

		c.Next()
	}
}

// SessionEmail returns the authenticated email for the request, empty when
// not logged in.
func SessionEmail(c *gin.Context) string {
	email, _ := sessions.Default(c).Get(SessionEmailKey).(string)

	return email
}
