package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverledger/config"
	"driverledger/database"
	"driverledger/services"
	"driverledger/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func fakeGoogle(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "token-123",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(services.GoogleUserInfo{
			ID: "g-42", Email: "google.driver@example.com", Name: "Google Driver", Picture: "https://example.com/p.png",
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newGoogleController(t *testing.T) (*GoogleAuthController, *gin.Engine) {
	t.Helper()
	db, err := database.OpenInMemory(t.Name())
	require.NoError(t, err)

	cfg := &config.Config{
		SessionSecret:      "secret",
		GoogleClientID:     "client",
		GoogleClientSecret: "client-secret",
		GoogleRedirectURL:  "http://localhost/authorize",
	}
	gc := NewGoogleAuthController(services.NewAuthService(db, nil), cfg)

	google := fakeGoogle(t)
	gc.oauth.Endpoint.TokenURL = google.URL + "/token"
	gc.userInfoURL = google.URL + "/userinfo"

	r := gin.New()
	r.GET("/login/google", gc.Login)
	r.GET("/authorize", gc.Authorize)
	return gc, r
}

func TestGoogleLoginSetsState(t *testing.T) {
	_, r := newGoogleController(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login/google", nil))
	require.Equal(t, http.StatusFound, w.Code)

	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", location.Host)

	var state *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == oauthStateCookie {
			state = c
		}
	}
	require.NotNil(t, state)
	assert.Equal(t, state.Value, location.Query().Get("state"))
}

func TestGoogleAuthorizeCreatesUser(t *testing.T) {
	gc, r := newGoogleController(t)

	req := httptest.NewRequest(http.MethodGet, "/authorize?state=abc&code=the-code", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "abc"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var session string
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.SessionCookie {
			session = c.Value
		}
	}
	userID, err := utils.ParseSession(gc.secret, session)
	require.NoError(t, err)

	user, err := gc.auth.FindUser(userID)
	require.NoError(t, err)
	assert.Equal(t, "google.driver@example.com", user.Email)
	require.NotNil(t, user.GoogleID)
	assert.Equal(t, "g-42", *user.GoogleID)
	assert.Equal(t, "Google Driver", user.Name)
}

func TestGoogleAuthorizeRejectsBadState(t *testing.T) {
	_, r := newGoogleController(t)

	req := httptest.NewRequest(http.MethodGet, "/authorize?state=forged&code=the-code", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "abc"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.False(t, strings.Contains(w.Header().Get("Set-Cookie"), utils.SessionCookie+"=ey"))
}
