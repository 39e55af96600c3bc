package models

import "time"

type FuelType struct {
	ID   string `json:"id" gorm:"primaryKey;size:191"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:50"`
}

// Refill is one fuel purchase. ComputedAverage is only ever written by the
// economy recalculation.
type Refill struct {
	ID              string    `json:"id" gorm:"primaryKey;size:191"`
	UserID          string    `json:"user_id" gorm:"not null;size:191;index"`
	ProfileID       string    `json:"profile_id" gorm:"not null;size:191;index"`
	Date            time.Time `json:"date" gorm:"type:date;not null;index"`
	Odometer        int       `json:"odometer" gorm:"not null"`
	Liters          float64   `json:"liters" gorm:"not null"`
	PricePerLiter   float64   `json:"price_per_liter"`
	TotalCost       float64   `json:"total_cost" gorm:"not null"`
	FullTank        bool      `json:"full_tank" gorm:"default:false"`
	FuelTypeID      *string   `json:"fuel_type_id" gorm:"size:191"`
	ComputedAverage *float64  `json:"computed_average"` // km/l
	CreatedAt       time.Time `json:"created_at"`

	FuelType *FuelType `json:"fuel_type,omitempty" gorm:"foreignKey:FuelTypeID"`

	// SincePrevious is a display-only figure filled for the history page.
	SincePrevious *float64 `json:"since_previous,omitempty" gorm:"-"`
}
