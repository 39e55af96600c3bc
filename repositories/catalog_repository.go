package repositories

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"driverledger/models"
)

// CatalogRepository manages the shared lookup tables: cost categories and
// fuel types.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Categories() ([]models.CostCategory, error) {
	var categories []models.CostCategory
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *CatalogRepository) FuelTypes() ([]models.FuelType, error) {
	var fuelTypes []models.FuelType
	err := r.db.Order("name").Find(&fuelTypes).Error
	return fuelTypes, err
}

func (r *CatalogRepository) CategoryExists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.CostCategory{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *CatalogRepository) FuelTypeExists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.FuelType{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindCategoryByName matches names exactly.
func (r *CatalogRepository) FindCategoryByName(name string) (*models.CostCategory, error) {
	var category models.CostCategory
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CatalogRepository) CreateCategory(name string) (*models.CostCategory, error) {
	category := &models.CostCategory{ID: uuid.New().String(), Name: name}
	if err := r.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// FindOrCreateCategory resolves name case-insensitively, creating the
// category when nothing matches.
func (r *CatalogRepository) FindOrCreateCategory(name string) (*models.CostCategory, error) {
	var category models.CostCategory
	err := r.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return r.CreateCategory(name)
}

// FindOrCreateFuelType resolves name case-insensitively, creating the fuel
// type when nothing matches.
func (r *CatalogRepository) FindOrCreateFuelType(name string) (*models.FuelType, error) {
	var fuelType models.FuelType
	err := r.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&fuelType).Error
	if err == nil {
		return &fuelType, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	fuelType = models.FuelType{ID: uuid.New().String(), Name: name}
	if err := r.db.Create(&fuelType).Error; err != nil {
		return nil, err
	}
	return &fuelType, nil
}
