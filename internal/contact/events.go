package contact

import (
	"context"
	"log/slog"

	"github.com/nfrund/backstory/internal/pubsub"
)

// Outcome is the payload of every contact event.
type Outcome struct {
	Form   string `json:"form"`
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

var (
	// EventSent is published after the relay accepted a submission.
	EventSent = pubsub.NewEvent[Outcome]("contact.submission.sent", "A contact submission was accepted by the email relay")
	// EventFailed is published after the relay call failed.
	EventFailed = pubsub.NewEvent[Outcome]("contact.submission.failed", "The email relay rejected or never answered a contact submission")
	// EventRejected is published when validation stopped a submission before dispatch.
	EventRejected = pubsub.NewEvent[Outcome]("contact.submission.rejected", "A contact submission failed validation")
)

// Audit subscribes a logger to every contact event.
func Audit(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	for _, ev := range []pubsub.Event[Outcome]{EventSent, EventFailed, EventRejected} {
		topic := ev.Name()
		err := pubsub.Subscribe(ctx, sub, ev, func(ctx context.Context, id string, o Outcome) error {
			level := slog.LevelInfo
			if o.Status.IsError() {
				level = slog.LevelWarn
			}
			logger.Log(ctx, level, "contact submission",
				"topic", topic,
				"submission_id", id,
				"form", o.Form,
				"status", o.Status,
				"error", o.Error,
			)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
