// File: /jobs/reminder_job.go
package jobs

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"driverledger/services"
)

// ReminderJob periodically emails users about fixed costs entering their
// alert window.
type ReminderJob struct {
	reminders *services.ReminderService
	location  *time.Location
	ticker    *time.Ticker
	done      chan struct{}
	now       func() time.Time
}

// NewReminderJob builds the job; today is evaluated in loc.
func NewReminderJob(db *gorm.DB, mailer services.Mailer, interval time.Duration, loc *time.Location) *ReminderJob {
	return &ReminderJob{
		reminders: services.NewReminderService(db, mailer),
		location:  loc,
		ticker:    time.NewTicker(interval),
		done:      make(chan struct{}),
		now:       time.Now,
	}
}

// Start runs the job once immediately and then on every tick.
func (j *ReminderJob) Start() {
	slog.Info("reminder job started")

	go func() {
		j.run()

		for {
			select {
			case <-j.ticker.C:
				j.run()
			case <-j.done:
				slog.Info("reminder job stopped")
				return
			}
		}
	}()
}

func (j *ReminderJob) Stop() {
	j.ticker.Stop()
	close(j.done)
}

func (j *ReminderJob) run() {
	today := j.now().In(j.location)
	sent, err := j.reminders.Run(today)
	if err != nil {
		slog.Error("reminder run failed", "error", err)
		return
	}
	slog.Info("reminder run completed", "emails", sent)
}
