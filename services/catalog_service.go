package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"driverledger/models"
	"driverledger/repositories"
)

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) Categories() ([]models.CostCategory, error) {
	return repositories.NewCatalogRepository(s.db).Categories()
}

func (s *CatalogService) FuelTypes() ([]models.FuelType, error) {
	return repositories.NewCatalogRepository(s.db).FuelTypes()
}

// AddCategory creates a category, refusing exact duplicates.
func (s *CatalogService) AddCategory(name string) (*models.CostCategory, error) {
	name = strings.TrimSpace(name)
	catalog := repositories.NewCatalogRepository(s.db)

	_, err := catalog.FindCategoryByName(name)
	if err == nil {
		return nil, ErrCategoryExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return catalog.CreateCategory(name)
}
