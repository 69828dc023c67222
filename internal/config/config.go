// Package config handles application configuration via environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"API_PORT" envDefault:"8080"`
	LogFile     string `env:"LOG_FILE"`
	AuditFile   string `env:"AUDIT_FILE" envDefault:"./logs/contact-submissions.log"`

	// Company / site identity used in response copy and emails
	CompanyName    string `env:"COMPANY_NAME" envDefault:"FastCaisse"`
	CompanyAddress string `env:"COMPANY_ADDRESS" envDefault:"Chaussée de Haecht 1749, 1130 Brussels, Belgium"`
	WebsiteURL     string `env:"WEBSITE_URL" envDefault:"https://fastcaisse.be"`
	AdminEmail     string `env:"ADMIN_EMAIL" envDefault:"contact@fastcaisse.be"`

	// SMTP Configuration
	SMTPHost       string        `env:"SMTP_HOST" envDefault:"mail.infomaniak.com"`
	SMTPPort       int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername   string        `env:"SMTP_USERNAME"`
	SMTPPassword   string        `env:"SMTP_PASSWORD"`
	SMTPEncryption string        `env:"SMTP_ENCRYPTION" envDefault:"tls"`
	SMTPTimeout    time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"`

	// Turnstile Configuration
	TurnstileSecretKey string        `env:"TURNSTILE_SECRET_KEY"`
	TurnstileTimeout   time.Duration `env:"TURNSTILE_TIMEOUT" envDefault:"10s"`

	// Anti-abuse Configuration
	EnableHoneypot  bool          `env:"ENABLE_HONEYPOT" envDefault:"true"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"`

	// Operator reset endpoint token
	AdminResetToken string `env:"ADMIN_RESET_TOKEN"`
}

// Validate checks settings the pipeline cannot run without.
func (c *Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST is not configured")
	}
	if c.SMTPPort < 1 || c.SMTPPort > 65535 {
		return fmt.Errorf("SMTP_PORT must be a valid port number (1-65535)")
	}
	switch c.SMTPEncryption {
	case "tls", "ssl", "":
	default:
		return fmt.Errorf("SMTP_ENCRYPTION must be \"tls\", \"ssl\", or empty")
	}
	if c.AdminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL is not configured")
	}
	return nil
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Try multiple locations for a .env file; the env-specific one wins.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}
	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directories exist
	for _, f := range []string{cfg.LogFile, cfg.AuditFile} {
		if err := os.MkdirAll(filepath.Dir(f), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	return cfg, nil
}
