package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"driverledger/models"
)

func TestMonthlyGoal(t *testing.T) {
	tests := []struct {
		name    string
		profile models.VehicleProfile
		want    float64
	}{
		{"daily", models.VehicleProfile{RevenueGoal: 250, GoalPeriod: models.GoalDaily, WorkDaysPerWeek: 5}, 5000},
		{"weekly", models.VehicleProfile{RevenueGoal: 1200, GoalPeriod: models.GoalWeekly}, 4800},
		{"monthly", models.VehicleProfile{RevenueGoal: 6000, GoalPeriod: models.GoalMonthly}, 6000},
		{"unset period", models.VehicleProfile{RevenueGoal: 6000}, 6000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthlyGoal(tt.profile))
		})
	}
}

func TestRemainingDays(t *testing.T) {
	today := time.Date(2024, time.April, 10, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, 20, RemainingDays(2024, time.April, today))
	assert.Equal(t, 0, RemainingDays(2024, time.March, today))
	assert.Equal(t, 0, RemainingDays(2023, time.April, today))
}

func TestComputeMonthlySummary(t *testing.T) {
	date := func(d int) time.Time { return time.Date(2024, time.April, d, 0, 0, 0, 0, time.UTC) }

	in := MonthlyInput{
		Year:  2024,
		Month: time.April,
		Today: time.Date(2024, time.April, 23, 9, 0, 0, 0, time.UTC), // 7 days left
		Profile: models.VehicleProfile{
			RevenueGoal:     1000,
			GoalPeriod:      models.GoalWeekly,
			GoalType:        models.GoalNet,
			WorkDaysPerWeek: 5,
		},
		Revenues: []models.Revenue{
			{Date: date(2), Value: 200},
			{Date: date(2), Value: 100},
			{Date: date(5), Value: 300},
		},
		VariableCosts: []models.VariableCost{
			{Date: date(2), Value: 60},
			{Date: date(5), Value: 40},
		},
		Records: []models.FixedCostRecord{
			{Amount: 150, Paid: true},
			{Amount: 350, Paid: false},
		},
		FixedCostTotal: 500,
	}

	s := ComputeMonthlySummary(in)

	assert.InDelta(t, 150, s.FixedPaid, 1e-9)
	assert.InDelta(t, 350, s.FixedPending, 1e-9)
	assert.InDelta(t, 500, s.FixedTotal, 1e-9)
	assert.InDelta(t, 600, s.GrossRevenue, 1e-9)
	assert.InDelta(t, 100, s.VariableCosts, 1e-9)
	assert.InDelta(t, 350, s.PartialNetProfit, 1e-9)
	assert.Equal(t, 2, s.DaysWorked)

	assert.InDelta(t, 4000, s.MonthlyGoal, 1e-9)
	assert.InDelta(t, 15, s.GrossAttainment, 1e-9)
	assert.InDelta(t, 12.5, s.NetAttainment, 1e-9)

	assert.Equal(t, 7, s.RemainingDays)
	// 300/day gross over 5 remaining work days.
	assert.InDelta(t, 600+300*5, s.ProjectedGross, 1e-9)
	// 250/day net over 5 remaining work days, minus all fixed costs.
	assert.InDelta(t, 500+250*5-500, s.ProjectedNetProfit, 1e-9)

	assert.Equal(t, []DailyTotal{{Day: 2, Total: 300}, {Day: 5, Total: 300}}, s.Daily)
}

func TestComputeMonthlySummaryGrossGoalHasNoNetAttainment(t *testing.T) {
	in := MonthlyInput{
		Year:     2024,
		Month:    time.May,
		Today:    time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Profile:  models.VehicleProfile{RevenueGoal: 1000, GoalPeriod: models.GoalMonthly, GoalType: models.GoalGross},
		Revenues: []models.Revenue{{Date: time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC), Value: 250}},
	}

	s := ComputeMonthlySummary(in)

	assert.InDelta(t, 25, s.GrossAttainment, 1e-9)
	assert.Zero(t, s.NetAttainment)
	assert.Zero(t, s.RemainingDays)
	assert.InDelta(t, 250, s.ProjectedGross, 1e-9)
}

func TestComputeMonthlySummaryEmptyMonth(t *testing.T) {
	s := ComputeMonthlySummary(MonthlyInput{Year: 2024, Month: time.February, Today: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)})

	assert.Zero(t, s.GrossRevenue)
	assert.Zero(t, s.GrossAttainment)
	assert.Zero(t, s.DaysWorked)
	assert.Zero(t, s.ProjectedGross)
	assert.Empty(t, s.Daily)
}
