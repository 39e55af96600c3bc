package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"driverledger/models"
	"driverledger/repositories"
)

// NewCategoryOption is the select value asking for a new cost category.
const NewCategoryOption = "add_new_category"

const defaultCostDescription = "Uncategorised cost"

type RevenueLine struct {
	Value  float64
	Kind   models.RevenueKind
	Source string
}

type CostLine struct {
	Description string
	CategoryID  string
	NewCategory string
	Value       float64
}

// at returns s[i] or "" when the form sent a shorter list.
func at(s []string, i int) string {
	if i < len(s) {
		return strings.TrimSpace(s[i])
	}
	return ""
}

// ParseRevenueLines turns the parallel form lists into revenue lines,
// skipping blank, unparsable and non-positive values.
func ParseRevenueLines(values, kinds, sources, others []string) []RevenueLine {
	var lines []RevenueLine
	for i := range values {
		value, err := strconv.ParseFloat(at(values, i), 64)
		if err != nil || value <= 0 {
			continue
		}

		line := RevenueLine{Value: value, Kind: models.RevenueCash, Source: models.SourceCash}
		if models.RevenueKind(at(kinds, i)) == models.RevenueApp {
			line.Kind = models.RevenueApp
			line.Source = at(sources, i)
			if line.Source == models.SourceOther || line.Source == "" {
				line.Source = models.SourceOther
				if custom := at(others, i); custom != "" {
					line.Source = custom
				}
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// ParseCostLines turns the parallel form lists into cost lines, skipping
// lines without a value or category.
func ParseCostLines(descriptions, categories, newNames, values []string) []CostLine {
	var lines []CostLine
	for i := range values {
		raw := at(values, i)
		category := at(categories, i)
		if raw == "" || category == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		lines = append(lines, CostLine{
			Description: at(descriptions, i),
			CategoryID:  category,
			NewCategory: at(newNames, i),
			Value:       value,
		})
	}
	return lines
}

type EntryService struct {
	db *gorm.DB
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{db: db}
}

func (s *EntryService) withEntry(userID string, date time.Time, fn func(tx *gorm.DB, entry *models.DailyEntry) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		profile, err := repositories.NewProfileRepository(tx).FindByUser(userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileRequired
		}
		if err != nil {
			return err
		}
		entry, err := repositories.NewEntryRepository(tx).FindOrCreate(userID, profile.ID, models.DateOnly(date))
		if err != nil {
			return err
		}
		return fn(tx, entry)
	})
}

// RecordPerformance adds km driven and revenue lines to the day's entry. It
// returns the number of revenue lines saved.
func (s *EntryService) RecordPerformance(userID string, date time.Time, km int, lines []RevenueLine) (int, error) {
	saved := 0
	err := s.withEntry(userID, date, func(tx *gorm.DB, entry *models.DailyEntry) error {
		entries := repositories.NewEntryRepository(tx)
		if km > 0 {
			if err := entries.AddKm(entry, km); err != nil {
				return err
			}
		}
		for _, line := range lines {
			revenue := &models.Revenue{
				ID:      uuid.New().String(),
				UserID:  userID,
				EntryID: &entry.ID,
				Date:    entry.Date,
				Value:   line.Value,
				Kind:    line.Kind,
				Source:  line.Source,
			}
			if err := entries.CreateRevenue(revenue); err != nil {
				return err
			}
			saved++
		}
		return nil
	})
	return saved, err
}

// RecordCosts adds variable cost lines to the day's entry, resolving or
// creating categories as needed. It returns the number of lines saved.
func (s *EntryService) RecordCosts(userID string, date time.Time, lines []CostLine) (int, error) {
	saved := 0
	err := s.withEntry(userID, date, func(tx *gorm.DB, entry *models.DailyEntry) error {
		entries := repositories.NewEntryRepository(tx)
		catalog := repositories.NewCatalogRepository(tx)

		for _, line := range lines {
			categoryID := ""
			if line.CategoryID == NewCategoryOption {
				if line.NewCategory == "" {
					continue
				}
				category, err := catalog.FindOrCreateCategory(line.NewCategory)
				if err != nil {
					return err
				}
				categoryID = category.ID
			} else {
				ok, err := catalog.CategoryExists(line.CategoryID)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
				categoryID = line.CategoryID
			}

			description := line.Description
			if description == "" {
				description = defaultCostDescription
			}
			cost := &models.VariableCost{
				ID:          uuid.New().String(),
				UserID:      userID,
				EntryID:     &entry.ID,
				CategoryID:  categoryID,
				Date:        entry.Date,
				Description: description,
				Value:       line.Value,
			}
			if err := entries.CreateVariableCost(cost); err != nil {
				return err
			}
			saved++
		}
		return nil
	})
	return saved, err
}

// Day returns the user's entry for date, or nil when nothing was recorded.
func (s *EntryService) Day(userID string, date time.Time) (*models.DailyEntry, error) {
	profile, err := repositories.NewProfileRepository(s.db).FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	entry, err := repositories.NewEntryRepository(s.db).FindByDate(profile.ID, models.DateOnly(date))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return entry, err
}
