package middleware

import (
	"net/http"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/session"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// LoadSession reads the session cookie once per request and stores the
// result under session.ContextKey. It must run after sessions.Sessions.
func LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(session.ContextKey, session.Load(sessions.Default(c)))
		c.Next()
	}
}

// RequireRole redirects to loginPath unless the session holds an identity for role
func RequireRole(role models.Role, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.FromContext(c).For(role) == nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the session identity for role. Handlers behind
// RequireRole can rely on it being non-nil.
func CurrentIdentity(c *gin.Context, role models.Role) *session.Identity {
	return session.FromContext(c).For(role)
}
