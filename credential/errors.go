package credential

import "errors"

// Error reports a failure to resolve credentials before a call could be made.
type Error struct {
	message string
	cause   error
}

// NewError creates a credential error with the given message.
func NewError(message string) *Error {
	return &Error{message: message}
}

// WrapError creates a credential error wrapping an underlying cause.
func WrapError(message string, cause error) *Error {
	return &Error{message: message, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsCredentialError checks if an error is a credential Error.
func IsCredentialError(err error) bool {
	var c *Error
	return errors.As(err, &c)
}
