package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderRunSendsOncePerWindow(t *testing.T) {
	db := openDB(t)
	user := newUser(t, db)
	fixed := NewFixedCostService(db)
	for _, in := range []FixedCostInput{
		{Name: "Insurance", Amount: 180, DueDay: 10, AlertDays: 7},
		{Name: "Today", Amount: 20, DueDay: 5, AlertDays: 0},
		{Name: "Later", Amount: 50, DueDay: 20, AlertDays: 7},
		{Name: "Past", Amount: 70, DueDay: 3, AlertDays: 7},
	} {
		_, err := fixed.Create(user.ID, in)
		require.NoError(t, err)
	}

	mailer := &fakeMailer{}
	svc := NewReminderService(db, mailer)
	sent, err := svc.Run(day(2024, 3, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	items := mailer.reminders[user.Email]
	require.Len(t, items, 2)
	assert.Equal(t, "Today", items[0].Name)
	assert.Equal(t, "Insurance", items[1].Name)

	sent, err = svc.Run(day(2024, 3, 6))
	require.NoError(t, err)
	assert.Zero(t, sent)

	next, err := NewFixedCostService(db).repo().RecordsForMonth(user.ID, 2024, time.April)
	require.NoError(t, err)
	assert.Len(t, next, 4, "next month is materialised ahead of time")
}

func TestReminderRetriesAfterFailedSend(t *testing.T) {
	db := openDB(t)
	user := newUser(t, db)
	_, err := NewFixedCostService(db).Create(user.ID, FixedCostInput{Name: "Phone", Amount: 60, DueDay: 8, AlertDays: 5})
	require.NoError(t, err)

	mailer := &fakeMailer{fail: true}
	svc := NewReminderService(db, mailer)
	sent, err := svc.Run(day(2024, 3, 5))
	require.NoError(t, err)
	assert.Zero(t, sent)

	mailer.fail = false
	sent, err = svc.Run(day(2024, 3, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}
