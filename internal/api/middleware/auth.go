package middleware

import (
	"ctchen222/taskboard/internal/api/response"
	"ctchen222/taskboard/internal/session"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "session"

// userIDKey is the gin context key the resolved user id is stored under.
const userIDKey = "userID"

// RequireSession resolves the session cookie and attaches the user id to the
// request context. Unauthenticated API callers get a 401 JSON body;
// unauthenticated page loads are redirected to the login page. The same
// backend serves both the board's fetch calls and plain browser navigation,
// hence the branch.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(SessionCookie)

		userID, ok, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			slog.Error("session lookup failed", "error", err)
			response.Error(c, http.StatusInternalServerError, "session lookup failed")
			c.Abort()
			return
		}
		if ok {
			c.Set(userIDKey, userID)
			c.Next()
			return
		}

		accepts := c.GetHeader("Accept")
		if strings.Contains(accepts, "application/json") || strings.HasPrefix(c.Request.URL.Path, "/tasks") {
			response.Error(c, http.StatusUnauthorized, "Not logged in")
			c.Abort()
			return
		}

		c.Redirect(http.StatusFound, "/login.html")
		c.Abort()
	}
}

// UserID returns the authenticated user id attached by RequireSession.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

// SetSessionCookie delivers the token as an HttpOnly cookie so injected
// scripts cannot read it. A zero ttl produces a browser-session cookie.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(ttl.Seconds()), "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", secure, true)
}
