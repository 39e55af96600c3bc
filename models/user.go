// File: /models/user.go
package models

import (
	"strings"
	"time"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	GoogleID     *string   `json:"google_id" gorm:"uniqueIndex;size:30"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:120"`
	PasswordHash *string   `json:"-" gorm:"size:256"` // nil for Google-only accounts
	Name         string    `json:"name" gorm:"size:100"`
	ProfilePic   *string   `json:"profile_pic" gorm:"size:200"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	Profile    *VehicleProfile `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	FixedCosts []FixedCost     `json:"fixed_costs,omitempty" gorm:"foreignKey:UserID"`
}

// HasPassword reports whether the account can sign in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// NameFromEmail derives a display name from the local part of an email
// address.
func NameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return email
	}
	return local
}
