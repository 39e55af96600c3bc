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

type FixedCostController struct {
	fixed    *services.FixedCostService
	location *time.Location
}

func NewFixedCostController(fixed *services.FixedCostService, loc *time.Location) *FixedCostController {
	return &FixedCostController{fixed: fixed, location: loc}
}

func (fc *FixedCostController) Index(c *gin.Context) {
	costs, err := fc.fixed.List(currentUser(c))
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "costs.html", gin.H{
		"Title":      "Fixed costs",
		"FixedCosts": costs,
		"Next":       "/costs",
	})
}

func (fc *FixedCostController) Create(c *gin.Context) {
	back := utils.SafeNext(c.PostForm("next"), "/costs")

	var req services.FixedCostInput
	if err := c.ShouldBind(&req); err != nil {
		redirectWithFlash(c, back, utils.FlashDanger, "Check the fixed cost fields: name, amount and a due day between 1 and 31.")
		return
	}
	cost, err := fc.fixed.Create(currentUser(c), req)
	if err != nil {
		serverError(c, err)
		return
	}
	redirectWithFlash(c, back, utils.FlashSuccess, fmt.Sprintf("Fixed cost %q added.", cost.Name))
}

// handleLookupError renders 404/403 pages and reports whether err was handled.
func (fc *FixedCostController) handleLookupError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, services.ErrNotFound):
		renderError(c, http.StatusNotFound, "Fixed cost not found.")
	case errors.Is(err, services.ErrForbidden):
		renderError(c, http.StatusForbidden, "You cannot change this fixed cost.")
	default:
		serverError(c, err)
	}
	return true
}

func (fc *FixedCostController) Edit(c *gin.Context) {
	cost, err := fc.fixed.Get(currentUser(c), c.Param("id"))
	if fc.handleLookupError(c, err) {
		return
	}
	render(c, http.StatusOK, "cost_edit.html", gin.H{"Title": "Edit fixed cost", "Cost": cost})
}

func (fc *FixedCostController) Update(c *gin.Context) {
	id := c.Param("id")

	var req services.FixedCostInput
	if err := c.ShouldBind(&req); err != nil {
		redirectWithFlash(c, "/costs/"+id+"/edit", utils.FlashDanger, "Check the fixed cost fields: name, amount and a due day between 1 and 31.")
		return
	}
	_, err := fc.fixed.Update(currentUser(c), id, req)
	if fc.handleLookupError(c, err) {
		return
	}
	redirectWithFlash(c, "/costs", utils.FlashSuccess, "Fixed cost updated.")
}

func (fc *FixedCostController) Delete(c *gin.Context) {
	err := fc.fixed.Delete(currentUser(c), c.Param("id"))
	if fc.handleLookupError(c, err) {
		return
	}
	redirectWithFlash(c, "/costs", utils.FlashSuccess, "Fixed cost removed.")
}

// ToggleRecord flips a record's paid flag and returns to its month.
func (fc *FixedCostController) ToggleRecord(c *gin.Context) {
	record, err := fc.fixed.TogglePaid(currentUser(c), c.Param("id"), today(fc.location))
	if fc.handleLookupError(c, err) {
		return
	}
	back := fmt.Sprintf("/dashboard?year=%d&month=%d", record.DueDate.Year(), int(record.DueDate.Month()))
	c.Redirect(http.StatusFound, back)
}
