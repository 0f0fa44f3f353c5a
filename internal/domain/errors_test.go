package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"validation", &ValidationError{Message: "bad input"}, IsValidation},
		{"conflict", &ConflictError{Message: "duplicate"}, IsConflict},
		{"invalid credentials", &InvalidCredentialsError{}, IsInvalidCredentials},
		{"email not verified", &EmailNotVerifiedError{}, IsEmailNotVerified},
		{"not found", &NotFoundError{Message: "gone"}, IsNotFound},
		{"already verified", &AlreadyVerifiedError{}, IsAlreadyVerified},
		{"invalid code", &InvalidCodeError{}, IsInvalidCode},
		{"code expired", &CodeExpiredError{}, IsCodeExpired},
		{"forbidden", &ForbiddenError{}, IsForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.pred(tt.err))
			assert.False(t, tt.pred(errors.New("plain error")))
			assert.False(t, tt.pred(nil))
		})
	}
}

func TestInvalidCredentialsError_Message(t *testing.T) {
	// one shared message for unknown email and wrong password
	assert.Equal(t, "invalid email or password", (&InvalidCredentialsError{}).Error())
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &InternalError{Message: "db down", Err: cause}
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "db down")
	assert.Contains(t, err.Error(), "connection refused")
}
