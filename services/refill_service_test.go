package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteCosts(t *testing.T) {
	in := RefillInput{PricePerLiter: 5.899, Liters: 40}
	in.CompleteCosts()
	assert.Equal(t, 235.96, in.TotalCost)

	in = RefillInput{PricePerLiter: 6, TotalCost: 100}
	in.CompleteCosts()
	assert.Equal(t, 16.67, in.Liters)

	in = RefillInput{Liters: 30, TotalCost: 200}
	in.CompleteCosts()
	assert.Equal(t, 6.667, in.PricePerLiter)

	in = RefillInput{PricePerLiter: 6, Liters: 10, TotalCost: 70}
	in.CompleteCosts()
	assert.Equal(t, 70.0, in.TotalCost, "complete input is left untouched")
}

func TestRefillCreateRecalculatesProfile(t *testing.T) {
	db := openDB(t)
	user := newUser(t, db)
	newProfile(t, db, user.ID)
	svc := NewRefillService(db)

	_, err := svc.Create(user.ID, RefillInput{Date: day(2024, 3, 1), Odometer: 1000, PricePerLiter: 6, Liters: 40, FullTank: true})
	require.NoError(t, err)
	second, err := svc.Create(user.ID, RefillInput{Date: day(2024, 3, 8), Odometer: 1500, PricePerLiter: 6, Liters: 40, FullTank: true})
	require.NoError(t, err)
	require.NotNil(t, second.ComputedAverage)
	assert.InDelta(t, 12.5, *second.ComputedAverage, 1e-9)

	profile, refills, err := svc.History(user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, profile.AverageEconomy, 1e-9)
	assert.Equal(t, 1500, profile.Odometer)
	require.Len(t, refills, 2)
	assert.Equal(t, second.ID, refills[0].ID, "newest first")
	require.NotNil(t, refills[0].SincePrevious)
	assert.InDelta(t, 12.5, *refills[0].SincePrevious, 1e-9)
	assert.Nil(t, refills[1].SincePrevious)
}

func TestRefillCreateRejectsOdometerOutOfOrder(t *testing.T) {
	db := openDB(t)
	user := newUser(t, db)
	newProfile(t, db, user.ID)
	svc := NewRefillService(db)

	_, err := svc.Create(user.ID, RefillInput{Date: day(2024, 3, 10), Odometer: 2000, PricePerLiter: 6, Liters: 40, FullTank: true})
	require.NoError(t, err)

	_, err = svc.Create(user.ID, RefillInput{Date: day(2024, 3, 12), Odometer: 1900, PricePerLiter: 6, Liters: 40})
	assert.ErrorIs(t, err, ErrInvalidOdometer)

	_, err = svc.Create(user.ID, RefillInput{Date: day(2024, 3, 1), Odometer: 2100, PricePerLiter: 6, Liters: 40})
	assert.ErrorIs(t, err, ErrInvalidOdometer)
}

func TestRefillCreateValidation(t *testing.T) {
	db := openDB(t)
	user := newUser(t, db)
	svc := NewRefillService(db)

	_, err := svc.Create(user.ID, RefillInput{Date: day(2024, 3, 1), Odometer: 10, PricePerLiter: 6, Liters: 10})
	assert.ErrorIs(t, err, ErrProfileRequired)

	newProfile(t, db, user.ID)
	_, err = svc.Create(user.ID, RefillInput{Date: day(2024, 3, 1), Odometer: 10, PricePerLiter: 6})
	assert.ErrorIs(t, err, ErrInvalidRefill)

	_, err = svc.Create(user.ID, RefillInput{Date: day(2024, 3, 1), Odometer: 10, PricePerLiter: 6, Liters: 10, FuelTypeID: NewFuelTypeOption})
	assert.ErrorIs(t, err, ErrFuelTypeRequired)

	_, err = svc.Create(user.ID, RefillInput{Date: day(2024, 3, 1), Odometer: 10, PricePerLiter: 6, Liters: 10, FuelTypeID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRefillCreateWithNewFuelType(t *testing.T) {
	db := openDB(t)
	user := newUser(t, db)
	newProfile(t, db, user.ID)

	refill, err := NewRefillService(db).Create(user.ID, RefillInput{
		Date: day(2024, 3, 1), Odometer: 10, PricePerLiter: 4, Liters: 10,
		FuelTypeID: NewFuelTypeOption, NewFuelTypeName: " Biodiesel ",
	})
	require.NoError(t, err)
	require.NotNil(t, refill.FuelTypeID)

	fuelTypes, err := NewCatalogService(db).FuelTypes()
	require.NoError(t, err)
	var names []string
	for _, ft := range fuelTypes {
		names = append(names, ft.Name)
	}
	assert.Contains(t, names, "Biodiesel")
}
