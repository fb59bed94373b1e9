package relay

import (
	"fmt"
	"log/slog"

	"github.com/nfrund/backstory/internal/config"
	"github.com/nfrund/backstory/internal/domain"
)

// New creates and returns a relay based on the configuration.
func New(cfg config.Provider, logger *slog.Logger) (domain.Relay, error) {
	templates := NewTemplates()
	timeout := cfg.GetRelayTimeout()

	switch cfg.GetRelayProvider() {
	case "log":
		return NewLogRelay(cfg.GetRelayToAddress(), logger), nil
	case "emailjs":
		if cfg.GetRelayServiceID() == "" || cfg.GetRelayPublicKey() == "" {
			return nil, fmt.Errorf("%w: relay provider is 'emailjs' but RELAY_SERVICE_ID or RELAY_PUBLIC_KEY is not set", domain.ErrRelayNotConfigured)
		}
		return NewEmailJSRelay(EmailJSBaseURL, cfg.GetRelayServiceID(), cfg.GetRelayPublicKey(), cfg.GetRelayPrivateKey(), timeout, logger), nil
	case "resend":
		if cfg.GetResendAPIKey() == "" || cfg.GetRelayToAddress() == "" {
			return nil, fmt.Errorf("%w: relay provider is 'resend' but RESEND_API_KEY or RELAY_TO_ADDRESS is not set", domain.ErrRelayNotConfigured)
		}
		return NewResendRelay(ResendBaseURL, cfg.GetResendAPIKey(), cfg.GetRelayFromAddress(), cfg.GetRelayToAddress(), timeout, templates, logger), nil
	case "mailgun":
		if cfg.GetMailgunDomain() == "" || cfg.GetMailgunAPIKey() == "" || cfg.GetRelayFromAddress() == "" || cfg.GetRelayToAddress() == "" {
			return nil, fmt.Errorf("%w: relay provider is 'mailgun' but MAILGUN_DOMAIN, MAILGUN_API_KEY, RELAY_FROM_ADDRESS or RELAY_TO_ADDRESS is not set", domain.ErrRelayNotConfigured)
		}
		return NewMailgunRelay(cfg.GetMailgunDomain(), cfg.GetMailgunAPIKey(), cfg.GetRelayFromAddress(), cfg.GetRelayToAddress(), timeout, templates, logger), nil
	default:
		return nil, fmt.Errorf("unknown relay provider: %s", cfg.GetRelayProvider())
	}
}
