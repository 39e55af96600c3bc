package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverledger/models"
	"driverledger/repositories"
)

func TestDashboardBuild(t *testing.T) {
	db := openDB(t)
	user := newUser(t, db)
	newProfile(t, db, user.ID)
	entries := NewEntryService(db)

	_, err := entries.RecordPerformance(user.ID, day(2024, 3, 4), 120, []RevenueLine{{Value: 300, Kind: models.RevenueApp, Source: "Uber"}})
	require.NoError(t, err)
	_, err = entries.RecordPerformance(user.ID, day(2024, 3, 5), 80, []RevenueLine{{Value: 200, Kind: models.RevenueCash, Source: models.SourceCash}})
	require.NoError(t, err)
	_, err = entries.RecordPerformance(user.ID, day(2024, 4, 1), 80, []RevenueLine{{Value: 999, Kind: models.RevenueCash, Source: models.SourceCash}})
	require.NoError(t, err)
	fuel, err := repositories.NewCatalogRepository(db).FindCategoryByName("Fuel")
	require.NoError(t, err)
	_, err = entries.RecordCosts(user.ID, day(2024, 3, 5), []CostLine{{CategoryID: fuel.ID, Value: 100}})
	require.NoError(t, err)

	fixed := NewFixedCostService(db)
	_, err = fixed.Create(user.ID, FixedCostInput{Name: "Rent", Amount: 150, DueDay: 10, AlertDays: 7})
	require.NoError(t, err)

	dash, err := NewDashboardService(db).Build(user.ID, 2024, time.March, day(2024, 3, 10))
	require.NoError(t, err)
	s := dash.Summary
	assert.Equal(t, 500.0, s.GrossRevenue)
	assert.Equal(t, 100.0, s.VariableCosts)
	assert.Equal(t, 2, s.DaysWorked)
	assert.Equal(t, 4000.0, s.MonthlyGoal)
	assert.InDelta(t, 10.0, s.NetAttainment, 1e-9)
	assert.Equal(t, 150.0, s.FixedPending)
	assert.Equal(t, 150.0, s.FixedTotal)
	assert.Equal(t, 21, s.RemainingDays)
	require.Len(t, s.Daily, 2)
	assert.Equal(t, DailyTotal{Day: 4, Total: 300}, s.Daily[0])

	_, err = fixed.TogglePaid(user.ID, dash.Records[0].ID, day(2024, 3, 10))
	require.NoError(t, err)
	dash, err = NewDashboardService(db).Build(user.ID, 2024, time.March, day(2024, 3, 10))
	require.NoError(t, err)
	assert.Len(t, dash.Records, 1, "records are materialised once")
	assert.Equal(t, 150.0, dash.Summary.FixedPaid)
	assert.Equal(t, 250.0, dash.Summary.PartialNetProfit)
}

func TestDashboardRequiresProfile(t *testing.T) {
	db := openDB(t)
	user := newUser(t, db)

	_, err := NewDashboardService(db).Build(user.ID, 2024, time.March, day(2024, 3, 10))
	assert.ErrorIs(t, err, ErrProfileRequired)
}
