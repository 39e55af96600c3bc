package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"driverledger/models"
	"driverledger/repositories"
)

type Dashboard struct {
	Year    int
	Month   time.Month
	Profile *models.VehicleProfile
	Records []models.FixedCostRecord
	Summary MonthlySummary
}

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Build materialises the month's fixed-cost records and computes the
// dashboard figures. today must be expressed in the user's time zone.
func (s *DashboardService) Build(userID string, year int, month time.Month, today time.Time) (*Dashboard, error) {
	profile, err := repositories.NewProfileRepository(s.db).FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileRequired
	}
	if err != nil {
		return nil, err
	}

	fixed := repositories.NewFixedCostRepository(s.db)
	if _, err := fixed.EnsureMonth(userID, year, month); err != nil {
		return nil, err
	}
	records, err := fixed.RecordsForMonth(userID, year, month)
	if err != nil {
		return nil, err
	}
	fixedTotal, err := fixed.TotalByUser(userID)
	if err != nil {
		return nil, err
	}

	from, to := models.MonthRange(year, month)
	entries := repositories.NewEntryRepository(s.db)
	revenues, err := entries.RevenuesBetween(userID, from, to)
	if err != nil {
		return nil, err
	}
	costs, err := entries.VariableCostsBetween(userID, from, to)
	if err != nil {
		return nil, err
	}

	summary := ComputeMonthlySummary(MonthlyInput{
		Year:           year,
		Month:          month,
		Today:          today,
		Profile:        *profile,
		Revenues:       revenues,
		VariableCosts:  costs,
		Records:        records,
		FixedCostTotal: fixedTotal,
	})

	return &Dashboard{
		Year:    year,
		Month:   month,
		Profile: profile,
		Records: records,
		Summary: summary,
	}, nil
}
