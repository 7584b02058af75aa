package http

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo's Validator hook
// so handlers can call ctx.Validate on bound request structs.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request structs.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks a bound request struct against its validate tags.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
