package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverledger/config"
)

func TestBuildReminderMessage(t *testing.T) {
	es := NewEmailService(&config.Config{SMTPHost: "localhost", SMTPPort: 2525, FromEmail: "noreply@example.com", FromName: "Driver Ledger"})

	m := es.BuildReminderMessage("driver@example.com", "Ana", []ReminderItem{
		{Name: "Insurance", Amount: 180, DueDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	})
	assert.Equal(t, []string{"Upcoming fixed costs"}, m.GetHeader("Subject"))
	assert.Equal(t, []string{"driver@example.com"}, m.GetHeader("To"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Insurance")
	assert.Contains(t, buf.String(), "10/03/2024")
}

func TestSendReminderEmailWithoutItems(t *testing.T) {
	es := NewEmailService(&config.Config{SMTPHost: "localhost", SMTPPort: 1})

	assert.NoError(t, es.SendReminderEmail("driver@example.com", "Ana", nil))
}
