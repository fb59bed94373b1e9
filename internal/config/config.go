package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Provider is the read-only view of the configuration that the rest of the
// application depends on. Tests can substitute their own implementation.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetAppEnv() string
	GetSessionSecret() string
	GetContentPath() string
	GetContentWatch() bool
	GetRelayProvider() string
	GetRelayPublicKey() string
	GetRelayPrivateKey() string
	GetRelayServiceID() string
	GetRelayTemplateInquiry() string
	GetRelayTemplateQuick() string
	GetRelayToAddress() string
	GetRelayFromAddress() string
	GetMailgunDomain() string
	GetMailgunAPIKey() string
	GetResendAPIKey() string
	GetRelayTimeout() time.Duration
	GetContactRateLimit() int
}

// Config holds all configuration for the application.
type Config struct {
	Addr          string `env:"APP_ADDR" envDefault:":8080"`
	AppBaseURL    string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
	AppEnv        string `env:"APP_ENV" envDefault:"development"`
	SessionSecret string `env:"SESSION_SECRET,required"`

	// ContentPath points at a TOML file overriding the embedded site content.
	ContentPath  string `env:"CONTENT_PATH"`
	ContentWatch bool   `env:"CONTENT_WATCH" envDefault:"false"`

	RelayProvider        string        `env:"RELAY_PROVIDER" envDefault:"log"`
	RelayPublicKey       string        `env:"RELAY_PUBLIC_KEY"`
	RelayPrivateKey      string        `env:"RELAY_PRIVATE_KEY"`
	RelayServiceID       string        `env:"RELAY_SERVICE_ID"`
	RelayTemplateInquiry string        `env:"RELAY_TEMPLATE_INQUIRY" envDefault:"contact_inquiry"`
	RelayTemplateQuick   string        `env:"RELAY_TEMPLATE_QUICK" envDefault:"contact_quick"`
	RelayToAddress       string        `env:"RELAY_TO_ADDRESS"`
	RelayFromAddress     string        `env:"RELAY_FROM_ADDRESS" envDefault:"Backstory <noreply@localhost>"`
	MailgunDomain        string        `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey        string        `env:"MAILGUN_API_KEY"`
	ResendAPIKey         string        `env:"RESEND_API_KEY"`
	RelayTimeout         time.Duration `env:"RELAY_TIMEOUT" envDefault:"10s"`

	ContactRateLimit int `env:"CONTACT_RATE_LIMIT" envDefault:"10"`
}

// New loads the .env file, if any, and parses the environment into a Config.
// A missing required variable is fatal, matching how the server treats an
// unusable configuration at startup.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return cfg
}

// Load parses the process environment without touching .env files.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses configuration from an explicit key/value map instead of the
// process environment.
func LoadFrom(environment map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.RelayProvider {
	case "log", "emailjs", "resend", "mailgun":
	default:
		return fmt.Errorf("unknown RELAY_PROVIDER %q", c.RelayProvider)
	}
	if c.ContactRateLimit <= 0 {
		return fmt.Errorf("CONTACT_RATE_LIMIT must be positive, got %d", c.ContactRateLimit)
	}
	if c.RelayTimeout <= 0 {
		return fmt.Errorf("RELAY_TIMEOUT must be positive, got %s", c.RelayTimeout)
	}
	return nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool { return c.AppEnv == "production" }

func (c *Config) GetAddr() string { return c.Addr }
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }
func (c *Config) GetAppEnv() string { return c.AppEnv }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetContentPath() string { return c.ContentPath }
func (c *Config) GetContentWatch() bool { return c.ContentWatch }
func (c *Config) GetRelayProvider() string { return c.RelayProvider }
func (c *Config) GetRelayPublicKey() string { return c.RelayPublicKey }
func (c *Config) GetRelayPrivateKey() string { return c.RelayPrivateKey }
func (c *Config) GetRelayServiceID() string { return c.RelayServiceID }
func (c *Config) GetRelayTemplateInquiry() string { return c.RelayTemplateInquiry }
func (c *Config) GetRelayTemplateQuick() string { return c.RelayTemplateQuick }
func (c *Config) GetRelayToAddress() string { return c.RelayToAddress }
func (c *Config) GetRelayFromAddress() string { return c.RelayFromAddress }
func (c *Config) GetMailgunDomain() string { return c.MailgunDomain }
func (c *Config) GetMailgunAPIKey() string { return c.MailgunAPIKey }
func (c *Config) GetResendAPIKey() string { return c.ResendAPIKey }
func (c *Config) GetRelayTimeout() time.Duration { return c.RelayTimeout }
func (c *Config) GetContactRateLimit() int { return c.ContactRateLimit }
