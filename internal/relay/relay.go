// Package relay sends contact submissions through an external email relay.
// Every Send makes exactly one attempt; retries are left to the visitor.
package relay

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/nfrund/backstory/internal/domain"
)

// --- LogRelay (for development) ---

// LogRelay prints messages to the log instead of sending them.
type LogRelay struct {
	to     string
	logger *slog.Logger
}

// NewLogRelay returns a relay that only logs.
func NewLogRelay(to string, logger *slog.Logger) *LogRelay {
	return &LogRelay{to: to, logger: logger.With("component", "relay.log")}
}

// Send logs the message content.
func (r *LogRelay) Send(ctx context.Context, msg domain.RelayMessage) error {
	keys := make([]string, 0, len(msg.Params))
	for k := range msg.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%q ", k, msg.Params[k])
	}

	r.logger.InfoContext(ctx, "contact message (logged, not sent)",
		"submission_id", msg.SubmissionID,
		"form", msg.Form,
		"template", msg.TemplateID,
		"to", r.to,
		"params", strings.TrimSpace(b.String()),
	)
	return nil
}
