package contact

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern matches something@something.something.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validatorInstance is a package-level validator instance.
// Using a single instance caches struct information.
var validatorInstance = validator.New()

func init() {
	err := validatorInstance.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// ValidEmail reports whether s is well formed.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Fields are the text fields of both forms.
type Fields struct {
	Name         string `form:"name" json:"name"`
	Email        string `form:"email" json:"email"`
	Phone        string `form:"phone" json:"phone"`
	Subject      string `form:"subject" json:"subject"`
	Message      string `form:"message" json:"message"`
	QuickEmail   string `form:"quick_email" json:"quick_email"`
	QuickMessage string `form:"quick_message" json:"quick_message"`
}

type inquiryInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email_format"`
	Subject string `validate:"required"`
	Message string `validate:"required"`
}

type quickInput struct {
	Email   string `validate:"required,email_format"`
	Message string `validate:"required"`
}

// Validation errors. Presence is checked before email format.
var (
	ErrEmpty        = errors.New("required field is empty")
	ErrInvalidEmail = errors.New("email address is malformed")
)

// ValidateInquiry checks the detailed inquiry fields. Phone is optional.
func ValidateInquiry(f Fields) error {
	return classify(validatorInstance.Struct(inquiryInput{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}))
}

// ValidateQuick checks the quick message fields.
func ValidateQuick(f Fields) error {
	return classify(validatorInstance.Struct(quickInput{
		Email:   strings.TrimSpace(f.QuickEmail),
		Message: strings.TrimSpace(f.QuickMessage),
	}))
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return ErrEmpty
		}
	}
	return ErrInvalidEmail
}

// StatusFor maps a validation error to its banner status.
func StatusFor(err error) Status {
	switch {
	case err == nil:
		return StatusIdle
	case errors.Is(err, ErrEmpty):
		return StatusErrorEmpty
	case errors.Is(err, ErrInvalidEmail):
		return StatusErrorInvalidEmail
	default:
		return StatusErrorEmpty
	}
}
