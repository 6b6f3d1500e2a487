package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// TokenCookie carries the session token for browser clients.
	TokenCookie = "token"
	userIDKey   = "userID"
)

// TokenParser turns a session token into the user id it was issued for.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// Authenticate reads the token from the Authorization header or the token
// cookie and puts the user id in the context. Requests without a valid token
// pass through anonymously.
func Authenticate(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(TokenCookie)
		}
		if token != "" {
			if userID, err := parser.ParseToken(token); err == nil {
				c.Set(userIDKey, userID)
			}
		}
		c.Next()
	}
}

// LoginRequired redirects anonymous requests to loginURL with the original
// request URI in the next parameter.
func LoginRequired(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUserID(c) == "" {
			c.Redirect(http.StatusFound, loginURL+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id, or "" for guests.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
