package controllers

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"driverledger/config"
	"driverledger/services"
	"driverledger/utils"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	oauthStateCookie  = "oauth_state"
)

type GoogleAuthController struct {
	auth        *services.AuthService
	oauth       *oauth2.Config
	userInfoURL string
	secret      string
}

func NewGoogleAuthController(auth *services.AuthService, cfg *config.Config) *GoogleAuthController {
	return &GoogleAuthController{
		auth: auth,
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Endpoint:     endpoints.Google,
			Scopes:       []string{"openid", "email", "profile"},
		},
		userInfoURL: googleUserInfoURL,
		secret:      cfg.SessionSecret,
	}
}

// Login redirects to Google's consent page.
func (gc *GoogleAuthController) Login(c *gin.Context) {
	state := uuid.New().String()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusFound, gc.oauth.AuthCodeURL(state))
}

// Authorize handles Google's callback.
func (gc *GoogleAuthController) Authorize(c *gin.Context) {
	expected, err := c.Cookie(oauthStateCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/", "", c.Request.TLS != nil, true)
	state := c.Query("state")
	if err != nil || state == "" || subtle.ConstantTimeCompare([]byte(state), []byte(expected)) != 1 {
		redirectWithFlash(c, "/login", utils.FlashDanger, "Google sign-in failed, please try again.")
		return
	}
	if reason := c.Query("error"); reason != "" {
		redirectWithFlash(c, "/login", utils.FlashWarning, "Google sign-in was cancelled.")
		return
	}

	info, err := gc.fetchUserInfo(c, c.Query("code"))
	if err != nil {
		_ = c.Error(err)
		redirectWithFlash(c, "/login", utils.FlashDanger, "Google sign-in failed, please try again.")
		return
	}

	user, err := gc.auth.UpsertGoogleUser(*info)
	if err != nil {
		serverError(c, err)
		return
	}
	if err := utils.SetSession(c, gc.secret, user.ID, true); err != nil {
		serverError(c, err)
		return
	}
	redirectWithFlash(c, "/", utils.FlashSuccess, "Welcome, "+user.Name+"!")
}

func (gc *GoogleAuthController) fetchUserInfo(c *gin.Context, code string) (*services.GoogleUserInfo, error) {
	ctx := c.Request.Context()
	token, err := gc.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	resp, err := gc.oauth.Client(ctx, token).Get(gc.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch userinfo: status %d", resp.StatusCode)
	}

	var info services.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	return &info, nil
}
