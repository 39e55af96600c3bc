package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverledger/models"
)

func TestProfileSaveLocksOdometerAfterFirstRefill(t *testing.T) {
	db := openDB(t)
	user := newUser(t, db)
	svc := NewProfileService(db)

	none, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	profile := newProfile(t, db, user.ID)
	assert.Equal(t, 1000, profile.Odometer)
	assert.Equal(t, 11.0, profile.AverageEconomy)

	_, err = NewRefillService(db).Create(user.ID, RefillInput{Date: day(2024, 1, 1), Odometer: 1200, PricePerLiter: 6, Liters: 20, FullTank: true})
	require.NoError(t, err)

	initial, err := svc.InitialSetup(user.ID)
	require.NoError(t, err)
	assert.False(t, initial)

	saved, err := svc.Save(user.ID, ProfileInput{CarModel: "HB20", Odometer: 5, AverageEconomy: 99, GoalPeriod: "yearly", WorkDaysPerWeek: 6})
	require.NoError(t, err)
	assert.Equal(t, "HB20", saved.CarModel)
	assert.Equal(t, 1200, saved.Odometer)
	assert.Equal(t, 11.0, saved.AverageEconomy)
	assert.Equal(t, models.GoalMonthly, saved.GoalPeriod)
	assert.Equal(t, models.GoalGross, saved.GoalType)
	assert.Equal(t, profile.ID, saved.ID)

	_, err = svc.Save(user.ID, ProfileInput{WorkDaysPerWeek: 8})
	assert.Error(t, err)
}

func TestDeleteAccount(t *testing.T) {
	db := openDB(t)
	user := newUser(t, db)
	newProfile(t, db, user.ID)

	require.NoError(t, NewProfileService(db).DeleteAccount(user.ID))
	_, err := NewAuthService(db, nil).FindUser(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCategory(t *testing.T) {
	db := openDB(t)
	svc := NewCatalogService(db)

	category, err := svc.AddCategory("  Insurance ")
	require.NoError(t, err)
	assert.Equal(t, "Insurance", category.Name)

	_, err = svc.AddCategory("Insurance")
	assert.ErrorIs(t, err, ErrCategoryExists)

	categories, err := svc.Categories()
	require.NoError(t, err)
	assert.Len(t, categories, 8)
}
