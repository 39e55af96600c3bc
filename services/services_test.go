package services

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"driverledger/database"
	"driverledger/models"
	"driverledger/repositories"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenInMemory(t.Name())
	require.NoError(t, err)
	require.NoError(t, database.SeedData(db))
	return db
}

func newUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{ID: uuid.New().String(), Email: uuid.New().String() + "@example.com", Name: "driver"}
	require.NoError(t, repositories.NewUserRepository(db).Create(user))
	return user
}

func newProfile(t *testing.T, db *gorm.DB, userID string) *models.VehicleProfile {
	t.Helper()
	profile, err := NewProfileService(db).Save(userID, ProfileInput{
		CarModel:        "Onix",
		Odometer:        1000,
		AverageEconomy:  11,
		RevenueGoal:     1000,
		GoalPeriod:      models.GoalWeekly,
		GoalType:        models.GoalNet,
		WorkDaysPerWeek: 5,
	})
	require.NoError(t, err)
	return profile
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeMailer struct {
	mu        sync.Mutex
	reminders map[string][]ReminderItem
	fail      bool
}

func (f *fakeMailer) SendWelcomeEmail(email, name string) error { return nil }

func (f *fakeMailer) SendReminderEmail(email, name string, items []ReminderItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return assert.AnError
	}
	if f.reminders == nil {
		f.reminders = make(map[string][]ReminderItem)
	}
	f.reminders[email] = append(f.reminders[email], items...)
	return nil
}
