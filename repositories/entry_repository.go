package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"driverledger/models"
)

type EntryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// FindOrCreate returns the profile's entry for date, creating an empty one
// on first use.
func (r *EntryRepository) FindOrCreate(userID, profileID string, date time.Time) (*models.DailyEntry, error) {
	var entry models.DailyEntry
	err := r.db.Where("profile_id = ? AND date = ?", profileID, date).First(&entry).Error
	if err == nil {
		return &entry, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry = models.DailyEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProfileID: profileID,
		Date:      date,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *EntryRepository) AddKm(entry *models.DailyEntry, km int) error {
	entry.KmDriven += km
	return r.db.Model(entry).Update("km_driven", entry.KmDriven).Error
}

func (r *EntryRepository) CreateRevenue(revenue *models.Revenue) error {
	return r.db.Create(revenue).Error
}

func (r *EntryRepository) CreateVariableCost(cost *models.VariableCost) error {
	return r.db.Create(cost).Error
}

func (r *EntryRepository) RevenuesBetween(userID string, from, to time.Time) ([]models.Revenue, error) {
	var revenues []models.Revenue
	err := r.db.Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date").Find(&revenues).Error
	return revenues, err
}

func (r *EntryRepository) VariableCostsBetween(userID string, from, to time.Time) ([]models.VariableCost, error) {
	var costs []models.VariableCost
	err := r.db.Preload("Category").
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date").Find(&costs).Error
	return costs, err
}

func (r *EntryRepository) FindByDate(profileID string, date time.Time) (*models.DailyEntry, error) {
	var entry models.DailyEntry
	err := r.db.Preload("Revenues").Preload("VariableCosts.Category").
		Where("profile_id = ? AND date = ?", profileID, date).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
