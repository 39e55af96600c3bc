package models

import "time"

// VehicleProfile holds the vehicle parameters and revenue goals of a driver.
// Odometer and AverageEconomy are maintained by the refill recalculation once
// the first refill exists.
type VehicleProfile struct {
	ID               string     `json:"id" gorm:"primaryKey;size:191"`
	UserID           string     `json:"user_id" gorm:"uniqueIndex;not null;size:191"`
	CarModel         string     `json:"car_model" gorm:"size:100"`
	Plate            string     `json:"plate" gorm:"size:20"`
	Odometer         int        `json:"odometer" gorm:"default:0"`
	AverageEconomy   float64    `json:"average_economy" gorm:"default:0"` // km/l
	RevenueGoal      float64    `json:"revenue_goal"`
	GoalPeriod       GoalPeriod `json:"goal_period" gorm:"size:20"`
	GoalType         GoalType   `json:"goal_type" gorm:"size:20"`
	WorkDaysPerWeek  int        `json:"work_days_per_week"`
	MinValuePerKm    float64    `json:"min_value_per_km" gorm:"default:0"`
	TargetValuePerKm float64    `json:"target_value_per_km" gorm:"default:0"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
