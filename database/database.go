// File: /database/database.go
package database

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"driverledger/models"
)

// DefaultCategories and DefaultFuelTypes are seeded when missing.
var (
	DefaultCategories = []string{"Fuel", "Maintenance", "Food", "Tolls", "Parking", "Washing", "Other"}
	DefaultFuelTypes  = []string{"Gasoline", "Ethanol", "Diesel", "CNG"}
)

func Initialize(driver, databaseURL string, logLevel logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(databaseURL)
	case "sqlite":
		dialector = sqlite.Open(databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logLevel),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// OpenInMemory opens a private in-memory SQLite database and migrates it.
// The name keeps concurrent databases in the same process apart.
func OpenInMemory(name string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", url.PathEscape(strings.ReplaceAll(name, "/", "_")))
	db, err := Initialize("sqlite", dsn, logger.Silent)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// A single connection keeps every query on the same memory database.
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.VehicleProfile{},
		&models.CostCategory{},
		&models.DailyEntry{},
		&models.Revenue{},
		&models.VariableCost{},
		&models.FuelType{},
		&models.Refill{},
		&models.FixedCost{},
		&models.FixedCostRecord{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	addCustomIndexes(db)
	return nil
}

func addCustomIndexes(db *gorm.DB) {
	indexes := []struct{ name, table, columns string }{
		// Recalculation reads the whole history in (date, odometer) order.
		{"idx_refills_profile_date_odometer", "refills", "profile_id, date, odometer"},
		{"idx_daily_entries_profile_date", "daily_entries", "profile_id, date"},
		{"idx_revenues_user_date", "revenues", "user_id, date"},
		{"idx_variable_costs_user_date", "variable_costs", "user_id, date"},
		{"idx_fixed_cost_records_user_due", "fixed_cost_records", "user_id, due_date"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}
		stmt := fmt.Sprintf("CREATE INDEX %s ON %s(%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(stmt).Error; err != nil {
			slog.Warn("could not create index", "index", idx.name, "error", err)
		}
	}
}

// SeedData inserts the default cost categories and fuel types that are not
// present yet.
func SeedData(db *gorm.DB) error {
	for _, name := range DefaultCategories {
		var existing models.CostCategory
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("lookup category %s: %w", name, err)
		}
		if err := db.Create(&models.CostCategory{ID: uuid.New().String(), Name: name}).Error; err != nil {
			return fmt.Errorf("create category %s: %w", name, err)
		}
	}

	for _, name := range DefaultFuelTypes {
		var existing models.FuelType
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("lookup fuel type %s: %w", name, err)
		}
		if err := db.Create(&models.FuelType{ID: uuid.New().String(), Name: name}).Error; err != nil {
			return fmt.Errorf("create fuel type %s: %w", name, err)
		}
	}

	return nil
}
