package relay

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nfrund/backstory/internal/domain"
)

// EmailJSBaseURL is the public EmailJS REST endpoint.
const EmailJSBaseURL = "https://api.emailjs.com"

// EmailJSRelay sends through EmailJS: a template id plus a flat parameter map,
// authorised by the account's public key.
type EmailJSRelay struct {
	client     *resty.Client
	serviceID  string
	publicKey  string
	privateKey string
	logger     *slog.Logger
}

type emailJSPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// NewEmailJSRelay creates an EmailJS relay against baseURL.
func NewEmailJSRelay(baseURL, serviceID, publicKey, privateKey string, timeout time.Duration, logger *slog.Logger) *EmailJSRelay {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &EmailJSRelay{
		client:     client,
		serviceID:  serviceID,
		publicKey:  publicKey,
		privateKey: privateKey,
		logger:     logger.With("component", "relay.emailjs"),
	}
}

// Send dispatches one message.
func (r *EmailJSRelay) Send(ctx context.Context, msg domain.RelayMessage) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(emailJSPayload{
			ServiceID:      r.serviceID,
			TemplateID:     msg.TemplateID,
			UserID:         r.publicKey,
			AccessToken:    r.privateKey,
			TemplateParams: msg.Params,
		}).
		Post("/api/v1.0/email/send")
	if err != nil {
		r.logger.ErrorContext(ctx, "emailjs request failed", "submission_id", msg.SubmissionID, "error", err)
		return fmt.Errorf("failed to send request to emailjs: %w", err)
	}
	if resp.IsError() {
		r.logger.WarnContext(ctx, "emailjs rejected message",
			"submission_id", msg.SubmissionID,
			"status", resp.StatusCode(),
			"body", resp.String(),
		)
		return fmt.Errorf("%w: emailjs status %d", domain.ErrRelayFailed, resp.StatusCode())
	}

	r.logger.InfoContext(ctx, "Successfully sent message via EmailJS", "submission_id", msg.SubmissionID, "template", msg.TemplateID)
	return nil
}
