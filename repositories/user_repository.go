package repositories

import (
	"strings"

	"gorm.io/gorm"

	"driverledger/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks the user up case-insensitively.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

// ListIDs returns the ids of every user.
func (r *UserRepository) ListIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&models.User{}).Order("created_at").Pluck("id", &ids).Error
	return ids, err
}

// Delete removes the user and everything it owns in one transaction.
func (r *UserRepository) Delete(userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		owned := []interface{}{
			&models.FixedCostRecord{},
			&models.FixedCost{},
			&models.Revenue{},
			&models.VariableCost{},
			&models.DailyEntry{},
			&models.Refill{},
			&models.VehicleProfile{},
		}
		for _, model := range owned {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", userID).Delete(&models.User{}).Error
	})
}
