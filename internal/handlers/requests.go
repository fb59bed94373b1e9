package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// TabRequest selects a podcast tab.
type TabRequest struct {
	Tab string `param:"tab" validate:"required,oneof=long short"`
}

// HomeRequest carries the optional query of the home page.
type HomeRequest struct {
	Tab string `query:"tab"`
}
