package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// AppConfig collects everything the server needs from the environment.
type AppConfig struct {
	ListenAddr        string `env:"LISTEN_ADDR" envDefault:":8080"`
	DatabasePath      string `env:"DATABASE_PATH" envDefault:"trisikkim.db"`
	SessionSecret     string `env:"SESSION_SECRET" envDefault:"trisikkim-dev-secret"`
	SessionSecure     bool   `env:"SESSION_SECURE" envDefault:"false"`
	GinMode           string `env:"GIN_MODE" envDefault:"release"`
	UploadDir         string `env:"UPLOAD_DIR" envDefault:"web/static/uploads"`
	UploadURLPath     string `env:"UPLOAD_URL_PATH" envDefault:"/static/uploads"`
	AdminUsername     string `env:"ADMIN_USERNAME"`
	AdminPassword     string `env:"ADMIN_PASSWORD"`
	AllowRegistration bool   `env:"ALLOW_REGISTRATION" envDefault:"false"`
	ResendAPIKey      string `env:"RESEND_API_KEY"`
	ContactNotifyTo   string `env:"CONTACT_NOTIFY_TO"`
	ContactNotifyFrom string `env:"CONTACT_NOTIFY_FROM" envDefault:"no-reply@trisikkim.gov.in"`
}

// Load reads the configuration from environment variables, applying defaults
// for anything unset.
func Load() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
