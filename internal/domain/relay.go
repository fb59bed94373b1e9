package domain

import "context"

// Relay dispatches one contact message through an external email relay.
// Implementations make exactly one attempt per call.
type Relay interface {
	Send(ctx context.Context, msg RelayMessage) error
}

// Form names a contact form.
type Form string

const (
	FormInquiry Form = "inquiry"
	FormQuick   Form = "quick"
)

// RelayMessage is a contact submission addressed to a relay template.
type RelayMessage struct {
	SubmissionID string
	Form         Form
	TemplateID   string
	// Params are the template parameters, keyed by the relay's field names.
	Params map[string]string
}
