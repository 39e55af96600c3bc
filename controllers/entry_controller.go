package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"driverledger/models"
	"driverledger/services"
	"driverledger/utils"
)

// Platforms offered for app revenue; anything else goes through "Other".
var Platforms = []string{"Uber", "99", "InDrive", models.SourceOther}

type EntryController struct {
	entries  *services.EntryService
	profiles *services.ProfileService
	catalog  *services.CatalogService
	location *time.Location
}

func NewEntryController(entries *services.EntryService, profiles *services.ProfileService, catalog *services.CatalogService, loc *time.Location) *EntryController {
	return &EntryController{entries: entries, profiles: profiles, catalog: catalog, location: loc}
}

func (ec *EntryController) Show(c *gin.Context) {
	userID := currentUser(c)
	date := formDate(c.Query("date"), today(ec.location))

	profile, err := ec.profiles.Get(userID)
	if err != nil {
		serverError(c, err)
		return
	}
	categories, err := ec.catalog.Categories()
	if err != nil {
		serverError(c, err)
		return
	}
	entry, err := ec.entries.Day(userID, date)
	if err != nil {
		serverError(c, err)
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"Title":             "Daily entry",
		"Date":              date,
		"HasProfile":        profile != nil,
		"Categories":        categories,
		"Platforms":         Platforms,
		"NewCategoryOption": services.NewCategoryOption,
		"Entry":             entry,
	})
}

func (ec *EntryController) Submit(c *gin.Context) {
	userID := currentUser(c)
	date := formDate(c.PostForm("date"), today(ec.location))
	back := "/?date=" + date.Format(models.DateLayout)

	var (
		saved int
		err   error
	)
	switch c.PostForm("form_type") {
	case "performance":
		km, _ := strconv.Atoi(c.PostForm("km_driven"))
		lines := services.ParseRevenueLines(
			c.PostFormArray("revenue_value"),
			c.PostFormArray("revenue_kind"),
			c.PostFormArray("revenue_source"),
			c.PostFormArray("revenue_source_other"),
		)
		saved, err = ec.entries.RecordPerformance(userID, date, km, lines)
		if err == nil {
			utils.AddFlash(c, utils.FlashSuccess, fmt.Sprintf("Performance saved: %d km and %d revenue line(s).", max(km, 0), saved))
		}
	case "cost":
		lines := services.ParseCostLines(
			c.PostFormArray("cost_description"),
			c.PostFormArray("cost_category"),
			c.PostFormArray("cost_new_category"),
			c.PostFormArray("cost_value"),
		)
		saved, err = ec.entries.RecordCosts(userID, date, lines)
		if err == nil {
			if saved == 0 {
				utils.AddFlash(c, utils.FlashWarning, "No valid cost was provided.")
			} else {
				utils.AddFlash(c, utils.FlashSuccess, fmt.Sprintf("%d cost(s) saved.", saved))
			}
		}
	default:
		redirectWithFlash(c, back, utils.FlashDanger, "Unknown form.")
		return
	}

	if errors.Is(err, services.ErrProfileRequired) {
		redirectWithFlash(c, "/profile", utils.FlashWarning, "Register your vehicle before recording entries.")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, back)
}
