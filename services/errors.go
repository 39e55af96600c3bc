package services

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrProfileRequired    = errors.New("vehicle profile required")
	ErrInvalidOdometer    = errors.New("odometer is inconsistent with the refill history")
	ErrInvalidRefill      = errors.New("price per liter, liters and total cost must be positive")
	ErrFuelTypeRequired   = errors.New("fuel type name required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCategoryExists     = errors.New("category already exists")
)
