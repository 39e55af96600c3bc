package repositories

import (
	"gorm.io/gorm"

	"driverledger/models"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) FindByUser(userID string) (*models.VehicleProfile, error) {
	var profile models.VehicleProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Save(profile *models.VehicleProfile) error {
	return r.db.Save(profile).Error
}

// UpdateEconomy persists only the fields owned by the refill recalculation.
func (r *ProfileRepository) UpdateEconomy(profile *models.VehicleProfile) error {
	return r.db.Model(profile).Updates(map[string]interface{}{
		"average_economy": profile.AverageEconomy,
		"odometer":        profile.Odometer,
	}).Error
}
