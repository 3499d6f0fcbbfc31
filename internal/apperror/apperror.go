// Package apperror defines the error taxonomy shared by the backend client,
// the workflows and the page handlers.
package apperror

import (
	"errors"
	"fmt"
)

// Type classifies an AppError.
type Type string

const (
	// TypeValidation marks input rejected before any backend call.
	TypeValidation Type = "VALIDATION"

	// TypeNotFound marks a lookup that matched nothing.
	TypeNotFound Type = "NOT_FOUND"

	// TypeUnauthorized marks a missing or expired session.
	TypeUnauthorized Type = "UNAUTHORIZED"

	// TypeForbidden marks an authenticated caller without the required role.
	TypeForbidden Type = "FORBIDDEN"

	// TypeExternal marks a failure reported by the backend or the transport.
	TypeExternal Type = "EXTERNAL"

	// TypeBusy marks an action rejected because the same action is in flight.
	TypeBusy Type = "BUSY"
)

// GenericMessage is shown when the backend gives no message of its own.
const GenericMessage = "Something went wrong, please try again"

// MsgBusy is the message of Busy errors.
const MsgBusy = "A request is already in progress"

// AppError is the error value every layer returns.
// Message is always safe to show to the user.
type AppError struct {
	Type    Type
	Message string
	Field   string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation creates a validation error for a form field.
func Validation(field, message string) *AppError {
	return &AppError{Type: TypeValidation, Field: field, Message: message}
}

// NotFound creates a not found error.
func NotFound(message string) *AppError {
	return &AppError{Type: TypeNotFound, Message: message}
}

// Unauthorized creates an unauthorized error.
func Unauthorized(message string) *AppError {
	return &AppError{Type: TypeUnauthorized, Message: message}
}

// Forbidden creates a forbidden error.
func Forbidden(message string) *AppError {
	return &AppError{Type: TypeForbidden, Message: message}
}

// External wraps a backend or transport failure. An empty message falls
// back to GenericMessage.
func External(message string, err error) *AppError {
	if message == "" {
		message = GenericMessage
	}
	return &AppError{Type: TypeExternal, Message: message, Err: err}
}

// Busy creates the error returned while an identical action is in flight.
func Busy() *AppError {
	return &AppError{Type: TypeBusy, Message: MsgBusy}
}

// As extracts the *AppError in err's chain.
func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// Is reports whether err carries an AppError of type t.
func Is(err error, t Type) bool {
	ae, ok := As(err)
	return ok && ae.Type == t
}

// Message returns the user-facing message for err. Errors outside the
// taxonomy map to GenericMessage so internals never reach a page.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if ae, ok := As(err); ok && ae.Message != "" {
		return ae.Message
	}
	return GenericMessage
}
