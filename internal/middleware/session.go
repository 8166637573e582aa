package middleware

import (
	"net/http"

	"github.com/creatorsmela/admin-console/internal/models"
	"github.com/creatorsmela/admin-console/internal/session"

	"github.com/gin-gonic/gin"
)

// loginRoute is where unauthenticated requests are pointed
const loginRoute = "/auth/Login"

// SessionMiddleware guards routes behind the console session
type SessionMiddleware struct {
	store *session.Store
}

// NewSessionMiddleware creates the session guard
func NewSessionMiddleware(store *session.Store) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

// RequireSession rejects requests while logged out, carrying the login
// route so the shell knows where to send the user. The signed-in user
// and token are set in the request context.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.store.Loading() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Session is still loading"})
			c.Abort()
			return
		}

		user := m.store.User()
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "Authentication required",
				"redirect": loginRoute,
			})
			c.Abort()
			return
		}

		if user.IsSuspended.Bool() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is suspended"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("token", m.store.Token())
		c.Next()
	}
}

// RequireRoles gates a route group to the given roles, mirroring the
// sidebar's role gating on the server side.
func (m *SessionMiddleware) RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "Authentication required",
				"redirect": loginRoute,
			})
			c.Abort()
			return
		}

		role := user.(*models.User).Role
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
		c.Abort()
	}
}

// ContextUser returns the signed-in user set by RequireSession
func ContextUser(c *gin.Context) *models.User {
	return c.MustGet("user").(*models.User)
}

// ContextToken returns the bearer token set by RequireSession
func ContextToken(c *gin.Context) string {
	return c.MustGet("token").(string)
}
