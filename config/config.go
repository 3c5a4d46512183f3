package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	Port        string
	DatabaseURL string
	LogLevel    string
	Environment string

	// Reminder engine
	ReminderLeadDays   []int // day offsets a renewal reminder fires at
	ReminderHourUTC    int   // daily fire hour, UTC wall clock
	ReminderWorkers    int   // dispatcher fan-out bound
	SendTimeoutSeconds int   // per-delivery timeout

	// SMTP (email channel)
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// Twilio (SMS channel, optional)
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.DatabaseURL = os.Getenv("DB_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DB_URL is not set")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	leadDays, err := parseLeadDays(os.Getenv("REMINDER_LEAD_DAYS"))
	if err != nil {
		return nil, err
	}
	cfg.ReminderLeadDays = leadDays

	cfg.ReminderHourUTC, err = intEnv("REMINDER_HOUR_UTC", 8)
	if err != nil {
		return nil, err
	}
	if cfg.ReminderHourUTC < 0 || cfg.ReminderHourUTC > 23 {
		return nil, fmt.Errorf("REMINDER_HOUR_UTC must be between 0 and 23, got %d", cfg.ReminderHourUTC)
	}

	cfg.ReminderWorkers, err = intEnv("REMINDER_WORKERS", 5)
	if err != nil {
		return nil, err
	}
	if cfg.ReminderWorkers < 1 {
		return nil, fmt.Errorf("REMINDER_WORKERS must be at least 1, got %d", cfg.ReminderWorkers)
	}

	cfg.SendTimeoutSeconds, err = intEnv("SEND_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}

	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.SMTPPort, err = intEnv("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}
	cfg.SMTPUser = os.Getenv("SMTP_USER")
	cfg.SMTPPass = os.Getenv("SMTP_PASS")
	cfg.SMTPFrom = os.Getenv("SMTP_FROM")
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUser
	}

	cfg.TwilioAccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	cfg.TwilioAuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	cfg.TwilioFromNumber = os.Getenv("TWILIO_PHONE_NUMBER")

	return cfg, nil
}

// parseLeadDays parses a comma-separated list of day offsets,
// e.g. "0,1,3". Empty input falls back to the default set.
func parseLeadDays(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return []int{0, 1, 3}, nil
	}

	parts := strings.Split(raw, ",")
	days := make([]int, 0, len(parts))
	seen := make(map[int]bool)
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid REMINDER_LEAD_DAYS entry %q: %w", p, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("REMINDER_LEAD_DAYS entries must be non-negative, got %d", d)
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("REMINDER_LEAD_DAYS is empty")
	}
	return days, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
