package config

import (
	"fmt"
	"os"
)

type NotifyConfig struct {
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFromNumber  string
}

type Config struct {
	Port       string
	RevsAPIURL string
	JWTSecret  string

	// ServiceToken authenticates the background refresh job against the
	// upstream store. Empty disables the job.
	ServiceToken    string
	RefreshSchedule string

	Notify NotifyConfig
}

// Load reads configuration from the environment with defaults. The
// upstream API URL is the only hard requirement.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		RevsAPIURL:      os.Getenv("REVS_API_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		ServiceToken:    os.Getenv("SERVICE_TOKEN"),
		RefreshSchedule: getEnv("REFRESH_SCHEDULE", "@every 1m"),
	}
	cfg.Notify = NotifyConfig{
		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Salas CREA"),
		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber:  os.Getenv("TWILIO_FROM_NUMBER"),
	}

	if cfg.RevsAPIURL == "" {
		return nil, fmt.Errorf("REVS_API_URL not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
