package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Addr    string
	BaseURL string

	// Sessions
	SessionSecret string

	// Storage
	ResumeDir string

	// Listing
	PageSize int

	// SMTP (optional; confirmation emails are logged instead of sent
	// when no host is configured)
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	EmailFrom   string
	MailTimeout time.Duration

	// Logging
	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		Addr:        ":3000",
		BaseURL:     "http://localhost:3000",
		ResumeDir:   "uploads/resumes",
		PageSize:    6,
		SMTPPort:    587,
		MailTimeout: 15 * time.Second,
		LogLevel:    "info",
	}

	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.Addr = addr
	}

	if baseURL := os.Getenv("APP_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	if dir := os.Getenv("RESUME_DIR"); dir != "" {
		cfg.ResumeDir = dir
	}

	if pageSize := os.Getenv("PAGE_SIZE"); pageSize != "" {
		n, err := strconv.Atoi(pageSize)
		if err != nil {
			return nil, fmt.Errorf("invalid PAGE_SIZE: %w", err)
		}
		cfg.PageSize = n
	}

	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.SMTPUser = os.Getenv("SMTP_USER")
	cfg.SMTPPass = os.Getenv("SMTP_PASS")

	if port := os.Getenv("SMTP_PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		cfg.SMTPPort = n
	}

	cfg.EmailFrom = os.Getenv("EMAIL_FROM")
	if cfg.EmailFrom == "" {
		if cfg.SMTPUser != "" {
			cfg.EmailFrom = cfg.SMTPUser
		} else {
			cfg.EmailFrom = "no-reply@easily.local"
		}
	}

	if timeout := os.Getenv("MAIL_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid MAIL_TIMEOUT: %w", err)
		}
		cfg.MailTimeout = d
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("session secret is empty")
	}

	if c.PageSize < 1 || c.PageSize > 100 {
		return fmt.Errorf("page size must be between 1 and 100")
	}

	if c.MailTimeout < time.Second {
		return fmt.Errorf("mail timeout too small: %v", c.MailTimeout)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// SMTPConfigured reports whether enough SMTP settings are present to
// actually dispatch mail.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}
