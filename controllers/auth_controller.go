// File: /controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"driverledger/config"
	"driverledger/services"
	"driverledger/utils"
)

type AuthController struct {
	auth *services.AuthService
	cfg  *config.Config
}

func NewAuthController(auth *services.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{auth: auth, cfg: cfg}
}

type RegisterRequest struct {
	Email     string `form:"email" binding:"required"`
	Password  string `form:"password" binding:"required"`
	Password2 string `form:"password2" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email      string `form:"email" binding:"required"`
	Password   string `form:"password" binding:"required"`
	RememberMe bool   `form:"remember_me"`
}

func (ac *AuthController) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{
		"Title":         "Log in",
		"Next":          c.Query("next"),
		"GoogleEnabled": ac.cfg.GoogleEnabled(),
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	next := c.Query("next")
	retry := "/login"
	if next != "" {
		retry += "?next=" + url.QueryEscape(next)
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithFlash(c, retry, utils.FlashDanger, "Invalid email or password.")
		return
	}

	user, err := ac.auth.Authenticate(req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		redirectWithFlash(c, retry, utils.FlashDanger, "Invalid email or password.")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	if err := utils.SetSession(c, ac.cfg.SessionSecret, user.ID, req.RememberMe); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, utils.SafeNext(next, "/"))
}

func (ac *AuthController) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"Title": "Register"})
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithFlash(c, "/register", utils.FlashDanger, "Fill in every field and repeat the same password.")
		return
	}
	if !utils.IsValidEmail(req.Email) {
		redirectWithFlash(c, "/register", utils.FlashDanger, "Please enter a valid email address.")
		return
	}
	if !utils.IsValidPassword(req.Password) {
		redirectWithFlash(c, "/register", utils.FlashDanger, "The password needs at least 6 characters with letters and numbers.")
		return
	}

	_, err := ac.auth.Register(req.Email, req.Password)
	if errors.Is(err, services.ErrEmailTaken) {
		redirectWithFlash(c, "/register", utils.FlashDanger, "Please use a different email address.")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	redirectWithFlash(c, "/login", utils.FlashSuccess, "Congratulations, you are now registered! Please log in.")
}

func (ac *AuthController) Logout(c *gin.Context) {
	utils.ClearSession(c)
	redirectWithFlash(c, "/login", utils.FlashInfo, "You have been logged out.")
}
