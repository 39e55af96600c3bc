package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"driverledger/middleware"
	"driverledger/models"
	"driverledger/utils"
)

// render executes the page template, adding the pending flashes and the
// login state every layout needs.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = utils.PopFlashes(c)
	_, data["LoggedIn"] = c.Get(middleware.UserIDKey)
	c.HTML(status, name, data)
}

func renderError(c *gin.Context, status int, message string) {
	render(c, status, "error.html", gin.H{"Title": http.StatusText(status), "Message": message})
}

// serverError hands err to middleware.ErrorHandler.
func serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func redirectWithFlash(c *gin.Context, location, category, message string) {
	utils.AddFlash(c, category, message)
	c.Redirect(http.StatusFound, location)
}

func currentUser(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

// today returns the current calendar day in loc as a DateOnly value.
func today(loc *time.Location) time.Time {
	return models.DateOnly(time.Now().In(loc))
}

// formDate parses a yyyy-mm-dd value, falling back to def when it is blank or
// malformed.
func formDate(value string, def time.Time) time.Time {
	if value == "" {
		return def
	}
	d, err := models.ParseDate(value)
	if err != nil {
		return def
	}
	return d
}

// monthQuery reads ?year=&month=, defaulting to the month of now.
func monthQuery(c *gin.Context, now time.Time) (int, time.Month) {
	year, month := now.Year(), now.Month()
	if y, err := strconv.Atoi(c.Query("year")); err == nil && y >= 1900 && y <= 9999 {
		year = y
	}
	if m, err := strconv.Atoi(c.Query("month")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}
	return year, month
}
