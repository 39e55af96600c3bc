package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"driverledger/utils"
)

// UserIDKey is the context key holding the authenticated user's id.
const UserIDKey = "user_id"

func sessionUser(c *gin.Context, secret string) (string, bool) {
	token, err := c.Cookie(utils.SessionCookie)
	if err != nil || token == "" {
		return "", false
	}
	userID, err := utils.ParseSession(secret, token)
	if err != nil {
		return "", false
	}
	return userID, true
}

// AuthMiddleware requires a valid session cookie. Anonymous visitors are sent
// to the login page with the requested path in "next".
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUser(c, secret)
		if !ok {
			utils.ClearSession(c)
			utils.AddFlash(c, utils.FlashInfo, "Please log in to access this page.")
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// RedirectIfAuthenticated sends logged-in users away from login and
// registration pages.
func RedirectIfAuthenticated(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := sessionUser(c, secret); ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
