package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"driverledger/models"
	"driverledger/services"
	"driverledger/utils"
)

type ProfileController struct {
	profiles *services.ProfileService
	fixed    *services.FixedCostService
}

func NewProfileController(profiles *services.ProfileService, fixed *services.FixedCostService) *ProfileController {
	return &ProfileController{profiles: profiles, fixed: fixed}
}

type ProfileRequest struct {
	CarModel         string  `form:"car_model" binding:"required,max=100"`
	Plate            string  `form:"plate" binding:"max=10"`
	Odometer         int     `form:"odometer" binding:"gte=0"`
	AverageEconomy   float64 `form:"average_economy" binding:"gte=0"`
	RevenueGoal      float64 `form:"revenue_goal" binding:"gte=0"`
	GoalPeriod       string  `form:"goal_period"`
	GoalType         string  `form:"goal_type"`
	WorkDaysPerWeek  int     `form:"work_days_per_week" binding:"gte=0,lte=7"`
	MinValuePerKm    float64 `form:"min_value_per_km" binding:"gte=0"`
	TargetValuePerKm float64 `form:"target_value_per_km" binding:"gte=0"`
}

func (pc *ProfileController) Show(c *gin.Context) {
	userID := currentUser(c)

	profile, err := pc.profiles.Get(userID)
	if err != nil {
		serverError(c, err)
		return
	}
	initial, err := pc.profiles.InitialSetup(userID)
	if err != nil {
		serverError(c, err)
		return
	}
	costs, err := pc.fixed.List(userID)
	if err != nil {
		serverError(c, err)
		return
	}

	render(c, http.StatusOK, "profile.html", gin.H{
		"Title":        "Profile",
		"Profile":      profile,
		"InitialSetup": initial,
		"FixedCosts":   costs,
		"Next":         "/profile",
		"GoalPeriods":  []models.GoalPeriod{models.GoalDaily, models.GoalWeekly, models.GoalMonthly},
		"GoalTypes":    []models.GoalType{models.GoalGross, models.GoalNet},
	})
}

func (pc *ProfileController) Save(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithFlash(c, "/profile", utils.FlashDanger, "Check the profile fields and try again.")
		return
	}

	_, err := pc.profiles.Save(currentUser(c), services.ProfileInput{
		CarModel:         req.CarModel,
		Plate:            req.Plate,
		Odometer:         req.Odometer,
		AverageEconomy:   req.AverageEconomy,
		RevenueGoal:      req.RevenueGoal,
		GoalPeriod:       models.GoalPeriod(req.GoalPeriod),
		GoalType:         models.GoalType(req.GoalType),
		WorkDaysPerWeek:  req.WorkDaysPerWeek,
		MinValuePerKm:    req.MinValuePerKm,
		TargetValuePerKm: req.TargetValuePerKm,
	})
	if err != nil {
		serverError(c, err)
		return
	}
	redirectWithFlash(c, "/profile", utils.FlashSuccess, "Profile saved.")
}

// DeleteAccount removes the user and all of its data, then logs out.
func (pc *ProfileController) DeleteAccount(c *gin.Context) {
	if err := pc.profiles.DeleteAccount(currentUser(c)); err != nil {
		serverError(c, err)
		return
	}
	utils.ClearSession(c)
	redirectWithFlash(c, "/register", utils.FlashInfo, "Your account has been deleted.")
}
