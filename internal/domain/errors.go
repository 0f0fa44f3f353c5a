package domain

import "fmt"

// Custom error types for the credential service

// ValidationError represents validation failures
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents resource conflict (e.g., duplicate email)
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Message)
}

// InvalidCredentialsError represents a login identity/secret mismatch. Unknown
// email and wrong password intentionally produce the same error so that login
// cannot be used to enumerate accounts.
type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string {
	return "invalid email or password"
}

// EmailNotVerifiedError represents correct credentials on an account that has
// not completed email verification.
type EmailNotVerifiedError struct{}

func (e *EmailNotVerifiedError) Error() string {
	return "email not verified"
}

// NotFoundError represents missing resource
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Message)
}

// AlreadyVerifiedError represents a verification attempt on an account that is
// already verified.
type AlreadyVerifiedError struct{}

func (e *AlreadyVerifiedError) Error() string {
	return "email already verified"
}

// InvalidCodeError represents a one-time code that does not match the stored
// code (including a code that has already been consumed).
type InvalidCodeError struct{}

func (e *InvalidCodeError) Error() string {
	return "invalid code"
}

// CodeExpiredError represents a one-time code submitted past its expiry.
type CodeExpiredError struct{}

func (e *CodeExpiredError) Error() string {
	return "code expired"
}

// ForbiddenError represents a failed ownership or dev-override check.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("forbidden: %s", e.Message)
	}
	return "forbidden"
}

// InternalError represents unexpected server errors
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("internal error: %s - %v", e.Message, e.Err)
	}
	return fmt.Sprintf("internal error: %s", e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	_, ok := err.(*ConflictError)
	return ok
}

// IsInvalidCredentials checks if an error is an InvalidCredentialsError
func IsInvalidCredentials(err error) bool {
	_, ok := err.(*InvalidCredentialsError)
	return ok
}

// IsEmailNotVerified checks if an error is an EmailNotVerifiedError
func IsEmailNotVerified(err error) bool {
	_, ok := err.(*EmailNotVerifiedError)
	return ok
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsAlreadyVerified checks if an error is an AlreadyVerifiedError
func IsAlreadyVerified(err error) bool {
	_, ok := err.(*AlreadyVerifiedError)
	return ok
}

// IsInvalidCode checks if an error is an InvalidCodeError
func IsInvalidCode(err error) bool {
	_, ok := err.(*InvalidCodeError)
	return ok
}

// IsCodeExpired checks if an error is a CodeExpiredError
func IsCodeExpired(err error) bool {
	_, ok := err.(*CodeExpiredError)
	return ok
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	_, ok := err.(*ForbiddenError)
	return ok
}
