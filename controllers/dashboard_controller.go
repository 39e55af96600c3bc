package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"driverledger/services"
	"driverledger/utils"
)

// PaymentMethods offered when marking a fixed cost as paid.
var PaymentMethods = []string{"Pix", "Debit card", "Credit card", "Bank slip", "Cash"}

type DashboardController struct {
	dashboards *services.DashboardService
	fixed      *services.FixedCostService
	location   *time.Location
}

func NewDashboardController(dashboards *services.DashboardService, fixed *services.FixedCostService, loc *time.Location) *DashboardController {
	return &DashboardController{dashboards: dashboards, fixed: fixed, location: loc}
}

type ChartResponse struct {
	Labels []int     `json:"labels"`
	Values []float64 `json:"values"`
}

func (dc *DashboardController) build(c *gin.Context) (*services.Dashboard, bool) {
	now := today(dc.location)
	year, month := monthQuery(c, now)

	dash, err := dc.dashboards.Build(currentUser(c), year, month, now)
	if errors.Is(err, services.ErrProfileRequired) {
		redirectWithFlash(c, "/profile", utils.FlashWarning, "Register your vehicle to see the dashboard.")
		return nil, false
	}
	if err != nil {
		serverError(c, err)
		return nil, false
	}
	return dash, true
}

func (dc *DashboardController) Show(c *gin.Context) {
	dash, ok := dc.build(c)
	if !ok {
		return
	}

	first := time.Date(dash.Year, dash.Month, 1, 0, 0, 0, 0, time.UTC)
	prev, next := first.AddDate(0, -1, 0), first.AddDate(0, 1, 0)
	render(c, http.StatusOK, "dashboard.html", gin.H{
		"Title":          fmt.Sprintf("%s %d", dash.Month, dash.Year),
		"Dashboard":      dash,
		"MonthNumber":    int(dash.Month),
		"PrevYear":       prev.Year(),
		"PrevMonth":      int(prev.Month()),
		"NextYear":       next.Year(),
		"NextMonth":      int(next.Month()),
		"PaymentMethods": PaymentMethods,
	})
}

// Chart returns the per-day revenue series of the month.
func (dc *DashboardController) Chart(c *gin.Context) {
	now := today(dc.location)
	year, month := monthQuery(c, now)

	dash, err := dc.dashboards.Build(currentUser(c), year, month, now)
	if errors.Is(err, services.ErrProfileRequired) {
		utils.SendError(c, http.StatusNotFound, "profile required")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	resp := ChartResponse{Labels: []int{}, Values: []float64{}}
	for _, d := range dash.Summary.Daily {
		resp.Labels = append(resp.Labels, d.Day)
		resp.Values = append(resp.Values, d.Total)
	}
	c.JSON(http.StatusOK, resp)
}

// SetPaid marks one of the month's records as paid or pending.
func (dc *DashboardController) SetPaid(c *gin.Context) {
	now := today(dc.location)
	year, month := monthQuery(c, now)
	back := fmt.Sprintf("/dashboard?year=%d&month=%d", year, int(month))

	paid := c.PostForm("paid") == "true"
	record, err := dc.fixed.SetPaid(currentUser(c), c.PostForm("record_id"), paid, c.PostForm("payment_method"), now)
	switch {
	case errors.Is(err, services.ErrNotFound):
		renderError(c, http.StatusNotFound, "Fixed cost record not found.")
	case errors.Is(err, services.ErrForbidden):
		renderError(c, http.StatusForbidden, "You cannot change this fixed cost.")
	case err != nil:
		serverError(c, err)
	case record.Paid:
		redirectWithFlash(c, back, utils.FlashSuccess, "Fixed cost marked as paid.")
	default:
		redirectWithFlash(c, back, utils.FlashInfo, "Fixed cost marked as pending.")
	}
}
