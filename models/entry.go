package models

import "time"

type CostCategory struct {
	ID   string `json:"id" gorm:"primaryKey;size:191"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100"`
}

// DailyEntry groups the revenue and variable costs of one working day.
type DailyEntry struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;index"`
	ProfileID string    `json:"profile_id" gorm:"not null;size:191;index"`
	Date      time.Time `json:"date" gorm:"type:date;not null;index"`
	KmDriven  int       `json:"km_driven" gorm:"default:0"`

	Revenues      []Revenue      `json:"revenues,omitempty" gorm:"foreignKey:EntryID"`
	VariableCosts []VariableCost `json:"variable_costs,omitempty" gorm:"foreignKey:EntryID"`
}

type Revenue struct {
	ID      string      `json:"id" gorm:"primaryKey;size:191"`
	UserID  string      `json:"user_id" gorm:"not null;size:191;index"`
	EntryID *string     `json:"entry_id" gorm:"size:191;index"`
	Date    time.Time   `json:"date" gorm:"type:date;not null;index"`
	Value   float64     `json:"value" gorm:"not null"`
	Kind    RevenueKind `json:"kind" gorm:"not null;size:50"`
	Source  string      `json:"source" gorm:"size:100"`
}

type VariableCost struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	UserID      string    `json:"user_id" gorm:"not null;size:191;index"`
	EntryID     *string   `json:"entry_id" gorm:"size:191;index"`
	CategoryID  string    `json:"category_id" gorm:"not null;size:191"`
	Date        time.Time `json:"date" gorm:"type:date;not null;index"`
	Description string    `json:"description" gorm:"not null;size:200"`
	Value       float64   `json:"value" gorm:"not null"`

	Category CostCategory `json:"category" gorm:"foreignKey:CategoryID"`
}
