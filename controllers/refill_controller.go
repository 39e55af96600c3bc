package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"driverledger/services"
	"driverledger/utils"
)

type RefillController struct {
	refills  *services.RefillService
	catalog  *services.CatalogService
	location *time.Location
}

func NewRefillController(refills *services.RefillService, catalog *services.CatalogService, loc *time.Location) *RefillController {
	return &RefillController{refills: refills, catalog: catalog, location: loc}
}

type RefillRequest struct {
	Date            string  `form:"date"`
	Odometer        *int    `form:"odometer" binding:"required,gte=0"`
	PricePerLiter   float64 `form:"price_per_liter" binding:"gte=0"`
	Liters          float64 `form:"liters" binding:"gte=0"`
	TotalCost       float64 `form:"total_cost" binding:"gte=0"`
	FullTank        bool    `form:"full_tank"`
	FuelTypeID      string  `form:"fuel_type"`
	NewFuelTypeName string  `form:"new_fuel_type_name" binding:"max=50"`
}

func (rc *RefillController) Index(c *gin.Context) {
	profile, refills, err := rc.refills.History(currentUser(c))
	if errors.Is(err, services.ErrProfileRequired) {
		redirectWithFlash(c, "/profile", utils.FlashWarning, "Register your vehicle before recording refills.")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	fuelTypes, err := rc.catalog.FuelTypes()
	if err != nil {
		serverError(c, err)
		return
	}

	render(c, http.StatusOK, "refills.html", gin.H{
		"Title":             "Refills",
		"Profile":           profile,
		"Refills":           refills,
		"FuelTypes":         fuelTypes,
		"NewFuelTypeOption": services.NewFuelTypeOption,
		"Today":             today(rc.location),
	})
}

func (rc *RefillController) Create(c *gin.Context) {
	var req RefillRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithFlash(c, "/refills", utils.FlashDanger, "The odometer is required and values cannot be negative.")
		return
	}

	_, err := rc.refills.Create(currentUser(c), services.RefillInput{
		Date:            formDate(req.Date, today(rc.location)),
		Odometer:        *req.Odometer,
		PricePerLiter:   req.PricePerLiter,
		Liters:          req.Liters,
		TotalCost:       req.TotalCost,
		FullTank:        req.FullTank,
		FuelTypeID:      req.FuelTypeID,
		NewFuelTypeName: req.NewFuelTypeName,
	})
	switch {
	case err == nil:
		redirectWithFlash(c, "/refills", utils.FlashSuccess, "Refill recorded.")
	case errors.Is(err, services.ErrProfileRequired):
		redirectWithFlash(c, "/profile", utils.FlashWarning, "Register your vehicle before recording refills.")
	case errors.Is(err, services.ErrInvalidOdometer):
		redirectWithFlash(c, "/refills", utils.FlashDanger, "The odometer does not fit between the refills recorded before and after this date.")
	case errors.Is(err, services.ErrInvalidRefill):
		redirectWithFlash(c, "/refills", utils.FlashDanger, "Provide at least two of price per liter, liters and total cost.")
	case errors.Is(err, services.ErrFuelTypeRequired):
		redirectWithFlash(c, "/refills", utils.FlashDanger, "Enter the name of the new fuel type.")
	case errors.Is(err, services.ErrNotFound):
		redirectWithFlash(c, "/refills", utils.FlashDanger, "Unknown fuel type.")
	default:
		serverError(c, err)
	}
}
