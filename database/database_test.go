package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"driverledger/models"
)

func TestInitializeRejectsUnknownDriver(t *testing.T) {
	_, err := Initialize("postgres", "whatever", logger.Silent)
	assert.Error(t, err)
}

func TestMigrateAndSeed(t *testing.T) {
	db, err := OpenInMemory(t.Name())
	require.NoError(t, err)

	require.NoError(t, SeedData(db))
	// Seeding twice must not duplicate rows.
	require.NoError(t, SeedData(db))

	var categories, fuelTypes int64
	require.NoError(t, db.Model(&models.CostCategory{}).Count(&categories).Error)
	require.NoError(t, db.Model(&models.FuelType{}).Count(&fuelTypes).Error)
	assert.Equal(t, int64(len(DefaultCategories)), categories)
	assert.Equal(t, int64(len(DefaultFuelTypes)), fuelTypes)

	assert.True(t, db.Migrator().HasIndex("refills", "idx_refills_profile_date_odometer"))
}

func TestMigrateIsRepeatable(t *testing.T) {
	db, err := OpenInMemory(t.Name())
	require.NoError(t, err)

	assert.NoError(t, Migrate(db))
}
