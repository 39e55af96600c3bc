package utils

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	SessionCookie = "session"

	// RememberFor is how long a "remember me" session lasts; other sessions
	// end with the browser.
	RememberFor = 30 * 24 * time.Hour

	sessionTTL = 12 * time.Hour
)

var ErrInvalidSession = errors.New("invalid session")

type SessionClaims struct {
	Remember bool `json:"remember,omitempty"`
	jwt.RegisteredClaims
}

// IssueSession signs an HS256 token identifying userID.
func IssueSession(secret, userID string, remember bool, now time.Time) (string, error) {
	ttl := sessionTTL
	if remember {
		ttl = RememberFor
	}
	claims := SessionClaims{
		Remember: remember,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// ParseSession verifies the token and returns the user id it carries.
func ParseSession(secret, token string) (string, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}

// SetSession logs userID in by writing the session cookie.
func SetSession(c *gin.Context, secret, userID string, remember bool) error {
	token, err := IssueSession(secret, userID, remember, time.Now())
	if err != nil {
		return err
	}
	maxAge := 0
	if remember {
		maxAge = int(RememberFor.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", c.Request.TLS != nil, true)
	return nil
}

func ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", c.Request.TLS != nil, true)
}
