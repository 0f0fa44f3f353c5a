package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator library
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// SignupPayload validation
type SignupPayload struct {
	Name     string `validate:"required,min=2,max=255"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"omitempty,oneof=client photographer"`
}

// LoginPayload validation
type LoginPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// VerifyEmailPayload validation
type VerifyEmailPayload struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,len=6,numeric"`
}

// ConfirmResetPayload validation
type ConfirmResetPayload struct {
	Email       string `validate:"required,email"`
	Code        string `validate:"required,len=6,numeric"`
	NewPassword string `validate:"required,min=8"`
}

// Validate validates a struct
func (v *Validator) Validate(data interface{}) error {
	return v.validate.Struct(data)
}

// ValidateEmail validates an email string
func (v *Validator) ValidateEmail(email string) error {
	return v.validate.Var(email, "required,email")
}

// ValidatePassword validates a password string
func (v *Validator) ValidatePassword(password string) error {
	if err := v.validate.Var(password, "required,min=8"); err != nil {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

// ValidateCode validates a one-time code
func (v *Validator) ValidateCode(code string, length int) error {
	if len(code) != length {
		return fmt.Errorf("code must be exactly %d digits", length)
	}
	return v.validate.Var(code, "numeric")
}
