package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common failures.
var (
	ErrNotFound           = errors.New("requested resource not found")
	ErrUnknownTab         = errors.New("unknown podcast tab")
	ErrContentInvalid     = errors.New("site content is invalid")
	ErrRelayFailed        = errors.New("email relay rejected the message")
	ErrRelayNotConfigured = errors.New("email relay is not configured")
)
