package models

import "time"

// FixedCost is a recurring monthly cost definition.
type FixedCost struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;index"`
	Name      string    `json:"name" gorm:"not null;size:120"`
	Amount    float64   `json:"amount" gorm:"not null"`
	DueDay    int       `json:"due_day" gorm:"not null"` // 1-31, clamped per month
	Notes     string    `json:"notes" gorm:"type:text"`
	AlertDays int       `json:"alert_days" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// FixedCostRecord is the instance of a FixedCost for one month.
type FixedCostRecord struct {
	ID            string     `json:"id" gorm:"primaryKey;size:191"`
	UserID        string     `json:"user_id" gorm:"not null;size:191;index"`
	FixedCostID   string     `json:"fixed_cost_id" gorm:"not null;size:191;uniqueIndex:uk_fixed_cost_due"`
	DueDate       time.Time  `json:"due_date" gorm:"type:date;not null;uniqueIndex:uk_fixed_cost_due;index"`
	Amount        float64    `json:"amount" gorm:"not null"`
	Paid          bool       `json:"paid" gorm:"default:false;not null"`
	PaidAt        *time.Time `json:"paid_at" gorm:"type:date"`
	PaymentMethod string     `json:"payment_method" gorm:"size:50"`
	Notes         string     `json:"notes" gorm:"type:text"`
	RemindedAt    *time.Time `json:"reminded_at"`

	FixedCost FixedCost `json:"fixed_cost" gorm:"foreignKey:FixedCostID"`
}
