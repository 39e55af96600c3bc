// File: /config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const devSessionSecret = "dev"

type Config struct {
	Port           string `env:"PORT" envDefault:"8080"`
	GinMode        string `env:"GIN_MODE" envDefault:"debug"`
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"mysql"`
	DatabaseURL    string `env:"DATABASE_URL" envDefault:"user:password@tcp(localhost:3306)/driverledger?charset=utf8mb4&parseTime=True&loc=UTC"`
	SessionSecret  string `env:"SESSION_SECRET" envDefault:"dev"`
	Timezone       string `env:"APP_TIMEZONE" envDefault:"America/Sao_Paulo"`

	// Google OAuth
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL" envDefault:"http://localhost:8080/authorize"`

	// Email Configuration
	SMTPHost     string `env:"SMTP_HOST" envDefault:"localhost"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"2525"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	FromEmail    string `env:"FROM_EMAIL" envDefault:"noreply@driverledger.local"`
	FromName     string `env:"FROM_NAME" envDefault:"Driver Ledger"`

	ReminderInterval   time.Duration `env:"REMINDER_INTERVAL" envDefault:"6h"`
	LoginRatePerMinute int           `env:"LOGIN_RATE_PER_MINUTE" envDefault:"20"`
}

// Load reads the configuration from the environment, applying defaults for
// anything unset.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.LoginRatePerMinute <= 0 {
		return nil, fmt.Errorf("LOGIN_RATE_PER_MINUTE must be positive, got %d", cfg.LoginRatePerMinute)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", cfg.GinMode)
	}
	if cfg.GinMode == "release" && (cfg.SessionSecret == "" || cfg.SessionSecret == devSessionSecret) {
		return nil, fmt.Errorf("SESSION_SECRET must be set in release mode")
	}
	return cfg, nil
}

// Location resolves the configured time zone used to decide what "today" is.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GoogleEnabled reports whether Google sign-in has been configured.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}
