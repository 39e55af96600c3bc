package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"driverledger/models"
)

// weeksPerMonth is the multiplier the goal arithmetic uses to turn weekly
// figures into monthly ones.
const weeksPerMonth = 4

// MonthlyInput is everything the dashboard arithmetic needs for one month.
type MonthlyInput struct {
	Year  int
	Month time.Month
	Today time.Time // in the user's time zone

	Profile        models.VehicleProfile
	Revenues       []models.Revenue
	VariableCosts  []models.VariableCost
	Records        []models.FixedCostRecord
	FixedCostTotal float64 // sum of every fixed-cost definition
}

type DailyTotal struct {
	Day   int     `json:"day"`
	Total float64 `json:"total"`
}

type MonthlySummary struct {
	FixedPaid        float64 `json:"fixed_paid"`
	FixedPending     float64 `json:"fixed_pending"`
	FixedTotal       float64 `json:"fixed_total"`
	GrossRevenue     float64 `json:"gross_revenue"`
	VariableCosts    float64 `json:"variable_costs"`
	PartialNetProfit float64 `json:"partial_net_profit"`
	DaysWorked       int     `json:"days_worked"`

	MonthlyGoal     float64 `json:"monthly_goal"`
	GrossAttainment float64 `json:"gross_attainment"` // percent
	NetAttainment   float64 `json:"net_attainment"`   // percent, only for net goals

	RemainingDays      int     `json:"remaining_days"`
	ProjectedGross     float64 `json:"projected_gross"`
	ProjectedNetProfit float64 `json:"projected_net_profit"`

	Daily []DailyTotal `json:"daily"`
}

// MonthlyGoal converts the profile's goal into a monthly amount.
func MonthlyGoal(p models.VehicleProfile) float64 {
	goal := p.RevenueGoal
	switch p.GoalPeriod {
	case models.GoalDaily:
		goal *= float64(p.WorkDaysPerWeek * weeksPerMonth)
	case models.GoalWeekly:
		goal *= weeksPerMonth
	}
	return goal
}

// RemainingDays counts the days left after today when the month being viewed
// is the current one, and zero otherwise.
func RemainingDays(year int, month time.Month, today time.Time) int {
	if today.Year() != year || today.Month() != month {
		return 0
	}
	return models.DaysInMonth(year, month) - today.Day()
}

// ComputeMonthlySummary derives the dashboard figures for one month.
func ComputeMonthlySummary(in MonthlyInput) MonthlySummary {
	var s MonthlySummary

	paid, pending := decimal.Zero, decimal.Zero
	for _, r := range in.Records {
		if r.Paid {
			paid = paid.Add(decimal.NewFromFloat(r.Amount))
		} else {
			pending = pending.Add(decimal.NewFromFloat(r.Amount))
		}
	}

	gross := decimal.Zero
	byDay := make(map[int]decimal.Decimal)
	for _, r := range in.Revenues {
		v := decimal.NewFromFloat(r.Value)
		gross = gross.Add(v)
		d := r.Date.Day()
		byDay[d] = byDay[d].Add(v)
	}

	variable := decimal.Zero
	for _, c := range in.VariableCosts {
		variable = variable.Add(decimal.NewFromFloat(c.Value))
	}

	net := gross.Sub(variable)

	s.FixedPaid = paid.InexactFloat64()
	s.FixedPending = pending.InexactFloat64()
	s.FixedTotal = in.FixedCostTotal
	s.GrossRevenue = gross.InexactFloat64()
	s.VariableCosts = variable.InexactFloat64()
	s.PartialNetProfit = net.Sub(paid).InexactFloat64()
	s.DaysWorked = len(byDay)

	s.MonthlyGoal = MonthlyGoal(in.Profile)
	if s.MonthlyGoal > 0 {
		s.GrossAttainment = s.GrossRevenue / s.MonthlyGoal * 100
		if in.Profile.GoalType == models.GoalNet {
			s.NetAttainment = net.InexactFloat64() / s.MonthlyGoal * 100
		}
	}

	s.RemainingDays = RemainingDays(in.Year, in.Month, in.Today)
	remainingWorkDays := float64(in.Profile.WorkDaysPerWeek) * float64(s.RemainingDays) / 7

	var dailyGross, dailyNet float64
	if s.DaysWorked > 0 {
		dailyGross = s.GrossRevenue / float64(s.DaysWorked)
		dailyNet = net.InexactFloat64() / float64(s.DaysWorked)
	}
	s.ProjectedGross = s.GrossRevenue + dailyGross*remainingWorkDays
	s.ProjectedNetProfit = net.InexactFloat64() + dailyNet*remainingWorkDays - s.FixedTotal

	s.Daily = make([]DailyTotal, 0, len(byDay))
	for d, total := range byDay {
		s.Daily = append(s.Daily, DailyTotal{Day: d, Total: total.InexactFloat64()})
	}
	sort.Slice(s.Daily, func(i, j int) bool { return s.Daily[i].Day < s.Daily[j].Day })

	return s
}
