// Package contact implements the two contact forms: validation, the shared
// status banner and the single relay dispatch per valid submission.
package contact

import "time"

// Status is the shared banner status of both forms.
type Status string

const (
	StatusIdle              Status = "idle"
	StatusSubmitting        Status = "submitting"
	StatusSuccess           Status = "success"
	StatusSuccessQuick      Status = "success_quick"
	StatusError             Status = "error"
	StatusErrorQuick        Status = "error_quick"
	StatusErrorEmpty        Status = "error_empty"
	StatusErrorInvalidEmail Status = "error_invalid_email"
)

// ClearDelay is how long a terminal status stays up before returning to idle.
const ClearDelay = 3 * time.Second

// Statuses lists every status in declaration order.
func Statuses() []Status {
	return []Status{
		StatusIdle,
		StatusSubmitting,
		StatusSuccess,
		StatusSuccessQuick,
		StatusError,
		StatusErrorQuick,
		StatusErrorEmpty,
		StatusErrorInvalidEmail,
	}
}

// ParseStatus returns the status named s, or false.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses() {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Message is the banner text for the status. Idle has none.
func (s Status) Message() string {
	switch s {
	case StatusSubmitting:
		return "Sending..."
	case StatusSuccess:
		return "Thanks for reaching out! I'll get back to you soon."
	case StatusSuccessQuick:
		return "Message sent! Talk soon."
	case StatusError:
		return "Something went wrong sending your inquiry. Please try again."
	case StatusErrorQuick:
		return "Your quick message didn't go through. Please try again."
	case StatusErrorEmpty:
		return "Please fill in all required fields."
	case StatusErrorInvalidEmail:
		return "Please enter a valid email address."
	default:
		return ""
	}
}

// Terminal reports whether the status is cleared by the auto-clear delay.
func (s Status) Terminal() bool {
	return s != StatusIdle && s != StatusSubmitting
}

// IsError reports whether the status is one of the error statuses.
func (s Status) IsError() bool {
	switch s {
	case StatusError, StatusErrorQuick, StatusErrorEmpty, StatusErrorInvalidEmail:
		return true
	}
	return false
}
