package services

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"driverledger/models"
	"driverledger/repositories"
)

// reminderHorizon bounds how far ahead pending records are looked up; the
// per-cost AlertDays narrows it further.
const reminderHorizon = 31

type ReminderService struct {
	db     *gorm.DB
	mailer Mailer
}

func NewReminderService(db *gorm.DB, mailer Mailer) *ReminderService {
	return &ReminderService{db: db, mailer: mailer}
}

// Run materialises this and next month's records for every user, then emails
// each user the unpaid costs entering their alert window. Records are marked
// reminded only after a successful send. It returns how many emails went out.
func (s *ReminderService) Run(today time.Time) (int, error) {
	today = models.DateOnly(today)
	users := repositories.NewUserRepository(s.db)
	fixed := repositories.NewFixedCostRepository(s.db)

	ids, err := users.ListIDs()
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}
	next := time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range ids {
		if _, err := fixed.EnsureMonth(id, today.Year(), today.Month()); err != nil {
			return 0, err
		}
		if _, err := fixed.EnsureMonth(id, next.Year(), next.Month()); err != nil {
			return 0, err
		}
	}

	pending, err := fixed.PendingUnreminded(today, today.AddDate(0, 0, reminderHorizon))
	if err != nil {
		return 0, fmt.Errorf("pending records: %w", err)
	}

	due := make(map[string][]models.FixedCostRecord)
	var order []string
	for _, record := range pending {
		days := int(models.DateOnly(record.DueDate).Sub(today).Hours() / 24)
		if days < 0 || days > record.FixedCost.AlertDays {
			continue
		}
		if _, ok := due[record.UserID]; !ok {
			order = append(order, record.UserID)
		}
		due[record.UserID] = append(due[record.UserID], record)
	}

	sent := 0
	for _, userID := range order {
		user, err := users.FindByID(userID)
		if err != nil {
			slog.Warn("reminder skipped, user lookup failed", "user_id", userID, "error", err)
			continue
		}

		records := due[userID]
		items := make([]ReminderItem, len(records))
		for i, record := range records {
			items[i] = ReminderItem{Name: record.FixedCost.Name, Amount: record.Amount, DueDate: record.DueDate}
		}
		if err := s.mailer.SendReminderEmail(user.Email, user.Name, items); err != nil {
			slog.Warn("failed to send reminder email", "user_id", userID, "error", err)
			continue
		}

		now := time.Now()
		for _, record := range records {
			if err := fixed.MarkReminded(record.ID, now); err != nil {
				return sent, fmt.Errorf("mark reminded: %w", err)
			}
		}
		sent++
	}
	return sent, nil
}
