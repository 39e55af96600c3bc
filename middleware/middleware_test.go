package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverledger/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, secret, userID string) *http.Cookie {
	t.Helper()
	token, err := utils.IssueSession(secret, userID, false, time.Now())
	require.NoError(t, err)
	return &http.Cookie{Name: utils.SessionCookie, Value: token}
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/refills", AuthMiddleware("secret"), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(UserIDKey))
	})

	w := serve(r, http.MethodGet, "/refills")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Frefills", w.Header().Get("Location"))

	w = serve(r, http.MethodGet, "/refills", sessionCookie(t, "other", "u1"))
	assert.Equal(t, http.StatusFound, w.Code)

	w = serve(r, http.MethodGet, "/refills", sessionCookie(t, "secret", "u1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}

func TestRedirectIfAuthenticated(t *testing.T) {
	r := gin.New()
	r.GET("/login", RedirectIfAuthenticated("secret"), func(c *gin.Context) {
		c.String(http.StatusOK, "form")
	})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/login").Code)
	w := serve(r, http.MethodGet, "/login", sessionCookie(t, "secret", "u1"))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRateLimitOnlyCountsPosts(t *testing.T) {
	r := gin.New()
	r.Any("/login", RateLimit(60, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/login").Code)
	}
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/login").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/login").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/login").Code)
}

func TestCleanupLimiters(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	rl.GetLimiter("a")
	rl.limiters["a"].lastSeen = time.Now().Add(-time.Hour)
	rl.GetLimiter("b")

	rl.CleanupLimiters(time.Minute)
	assert.NotContains(t, rl.limiters, "a")
	assert.Contains(t, rl.limiters, "b")
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(), SecurityHeaders())
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("database down"))
	})

	w := serve(r, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "An unexpected error"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
