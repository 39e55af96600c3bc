// File: /services/email_service.go
package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"driverledger/config"
	"driverledger/utils"
)

// Mailer sends the application's transactional emails.
type Mailer interface {
	SendWelcomeEmail(email, name string) error
	SendReminderEmail(email, name string, items []ReminderItem) error
}

// ReminderItem is one fixed cost listed in a reminder email.
type ReminderItem struct {
	Name    string
	Amount  float64
	DueDate time.Time
}

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

func (es *EmailService) newMessage(to, subject string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	return m
}

// Send welcome email after registration
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	m := es.newMessage(email, fmt.Sprintf("Welcome to %s", es.config.FromName))

	textBody := fmt.Sprintf(`Hello %s!

Your account is ready. Start by registering your vehicle on the profile page,
then record your daily revenue, costs and refills to follow your monthly goal.

The %s Team
This is an automated email, please do not reply.
`, name, es.config.FromName)

	m.SetBody("text/plain", textBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	slog.Info("welcome email sent", "to", email)
	return nil
}

// BuildReminderMessage renders the reminder for the given pending costs.
func (es *EmailService) BuildReminderMessage(email, name string, items []ReminderItem) *gomail.Message {
	m := es.newMessage(email, "Upcoming fixed costs")

	var text, html strings.Builder
	fmt.Fprintf(&text, "Hello %s!\n\nThese fixed costs are due soon:\n\n", name)
	fmt.Fprintf(&html, "<p>Hello %s!</p><p>These fixed costs are due soon:</p><ul>", name)
	for _, item := range items {
		due := item.DueDate.Format("02/01/2006")
		amount := utils.FormatCurrency(item.Amount)
		fmt.Fprintf(&text, "- %s: %s due on %s\n", item.Name, amount, due)
		fmt.Fprintf(&html, "<li><strong>%s</strong>: %s due on %s</li>", item.Name, amount, due)
	}
	fmt.Fprintf(&text, "\nMark them as paid on the dashboard once settled.\n\nThe %s Team\n", es.config.FromName)
	fmt.Fprintf(&html, "</ul><p>Mark them as paid on the dashboard once settled.</p><p>The %s Team</p>", es.config.FromName)

	m.SetBody("text/plain", text.String())
	m.AddAlternative("text/html", html.String())
	return m
}

func (es *EmailService) SendReminderEmail(email, name string, items []ReminderItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := es.dialer.DialAndSend(es.BuildReminderMessage(email, name, items)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	slog.Info("reminder email sent", "to", email, "items", len(items))
	return nil
}
