package relay

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nfrund/backstory/internal/domain"
)

// ResendBaseURL is the Resend API endpoint.
const ResendBaseURL = "https://api.resend.com"

// ResendRelay sends emails using the Resend API.
type ResendRelay struct {
	client    *resty.Client
	from      string
	to        string
	templates *Templates
	logger    *slog.Logger
}

type resendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	ReplyTo string `json:"reply_to,omitempty"`
}

// NewResendRelay creates a Resend relay against baseURL.
func NewResendRelay(baseURL, apiKey, from, to string, timeout time.Duration, templates *Templates, logger *slog.Logger) *ResendRelay {
	if from == "" {
		from = "Backstory <onboarding@resend.dev>"
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")

	return &ResendRelay{
		client:    client,
		from:      from,
		to:        to,
		templates: templates,
		logger:    logger.With("component", "relay.resend"),
	}
}

// Send renders the message body and dispatches it.
func (r *ResendRelay) Send(ctx context.Context, msg domain.RelayMessage) error {
	html, err := r.templates.Render(msg)
	if err != nil {
		return err
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(resendPayload{
			From:    r.from,
			To:      r.to,
			Subject: Subject(msg),
			HTML:    html,
			ReplyTo: msg.Params["reply_to"],
		}).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("failed to send request to resend: %w", err)
	}
	if resp.IsError() {
		r.logger.WarnContext(ctx, "resend rejected message", "submission_id", msg.SubmissionID, "status", resp.StatusCode())
		return fmt.Errorf("%w: resend status %d", domain.ErrRelayFailed, resp.StatusCode())
	}

	r.logger.InfoContext(ctx, "Successfully sent message via Resend", "submission_id", msg.SubmissionID)
	return nil
}
