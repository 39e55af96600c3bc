package repositories

import (
	"time"

	"gorm.io/gorm"

	"driverledger/models"
)

type RefillRepository struct {
	db *gorm.DB
}

func NewRefillRepository(db *gorm.DB) *RefillRepository {
	return &RefillRepository{db: db}
}

func (r *RefillRepository) Create(refill *models.Refill) error {
	return r.db.Create(refill).Error
}

// ListByProfile returns the full history ordered by (date, odometer).
func (r *RefillRepository) ListByProfile(profileID string) ([]*models.Refill, error) {
	var refills []*models.Refill
	err := r.db.Preload("FuelType").
		Where("profile_id = ?", profileID).
		Order("date ASC, odometer ASC").
		Find(&refills).Error
	return refills, err
}

// HasAny reports whether the user has recorded at least one refill.
func (r *RefillRepository) HasAny(userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Refill{}).Where("user_id = ?", userID).Limit(1).Count(&count).Error
	return count > 0, err
}

// OdometerBounds returns the highest odometer recorded before date and the
// lowest recorded after it. A nil bound means there is no such refill.
func (r *RefillRepository) OdometerBounds(profileID string, date time.Time) (lower, upper *int, err error) {
	var before, after []int
	err = r.db.Model(&models.Refill{}).
		Where("profile_id = ? AND date < ?", profileID, date).
		Order("odometer DESC").Limit(1).
		Pluck("odometer", &before).Error
	if err != nil {
		return nil, nil, err
	}
	err = r.db.Model(&models.Refill{}).
		Where("profile_id = ? AND date > ?", profileID, date).
		Order("odometer ASC").Limit(1).
		Pluck("odometer", &after).Error
	if err != nil {
		return nil, nil, err
	}
	if len(before) > 0 {
		lower = &before[0]
	}
	if len(after) > 0 {
		upper = &after[0]
	}
	return lower, upper, nil
}

// SaveAverages writes back the computed_average column of every refill.
func (r *RefillRepository) SaveAverages(refills []*models.Refill) error {
	for _, refill := range refills {
		err := r.db.Model(&models.Refill{}).
			Where("id = ?", refill.ID).
			Update("computed_average", refill.ComputedAverage).Error
		if err != nil {
			return err
		}
	}
	return nil
}
