// Package apperr defines the error kinds the API distinguishes in
// responses: validation failures, credential/token failures, and
// missing owned resources. Everything else is treated as a generic
// request failure by the handlers.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both absent and not-owned resources, and
	// structurally invalid identifiers.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned for login failures without
	// revealing whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers unparseable, badly signed, and revoked tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError reports a malformed or missing input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation builds a ValidationError for a field.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AsValidation returns the ValidationError wrapped in err, if any.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
