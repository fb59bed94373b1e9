package relay

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/nfrund/backstory/internal/domain"
)

// MailgunRelay sends emails via the Mailgun API.
type MailgunRelay struct {
	client    *mailgun.MailgunImpl
	from      string
	to        string
	timeout   time.Duration
	templates *Templates
	logger    *slog.Logger
}

// NewMailgunRelay creates a Mailgun relay for domain.
func NewMailgunRelay(mailDomain, apiKey, from, to string, timeout time.Duration, templates *Templates, logger *slog.Logger) *MailgunRelay {
	return &MailgunRelay{
		client:    mailgun.NewMailgun(mailDomain, apiKey),
		from:      from,
		to:        to,
		timeout:   timeout,
		templates: templates,
		logger:    logger.With("component", "relay.mailgun"),
	}
}

// Send renders the message body and dispatches it.
func (r *MailgunRelay) Send(ctx context.Context, msg domain.RelayMessage) error {
	html, err := r.templates.Render(msg)
	if err != nil {
		return err
	}

	message := r.client.NewMessage(r.from, Subject(msg), msg.Params["message"], r.to)
	message.SetHtml(html)
	if replyTo := msg.Params["reply_to"]; replyTo != "" {
		message.SetReplyTo(replyTo)
	}

	sendCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, messageID, err := r.client.Send(sendCtx, message)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to send message", "submission_id", msg.SubmissionID, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrRelayFailed, err)
	}

	r.logger.InfoContext(ctx, "message sent", "submission_id", msg.SubmissionID, "message_id", messageID)
	return nil
}
