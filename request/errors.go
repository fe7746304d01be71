package request

import "errors"

// DispatchError reports a failure in the transport layer while sending a
// request or receiving a response. Raw I/O faults are coerced into the same
// type via FromIOError, so the two are indistinguishable downstream.
type DispatchError struct {
	message string
	timeout bool
	cause   error
}

// NewDispatchError creates a dispatch error with the given message.
func NewDispatchError(message string) *DispatchError {
	return &DispatchError{message: message}
}

// NewTimeoutError creates a dispatch error marked as a timeout.
func NewTimeoutError(err error) *DispatchError {
	return &DispatchError{message: err.Error(), timeout: true, cause: err}
}

// NewConnectionError creates a dispatch error for a connection-level failure.
func NewConnectionError(err error) *DispatchError {
	return &DispatchError{message: err.Error(), cause: err}
}

// FromIOError coerces a raw I/O fault into a DispatchError. If err already is
// a DispatchError it is returned unchanged.
func FromIOError(err error) *DispatchError {
	var d *DispatchError
	if errors.As(err, &d) {
		return d
	}
	return &DispatchError{message: err.Error(), cause: err}
}

// Error implements the error interface. The message may be empty when the
// source failure carried no text.
func (e *DispatchError) Error() string {
	return e.message
}

// Unwrap returns the underlying cause, if any.
func (e *DispatchError) Unwrap() error {
	return e.cause
}

// Timeout reports whether the failure was a request or connection timeout.
func (e *DispatchError) Timeout() bool {
	return e.timeout
}

// IsDispatchError checks if an error is a DispatchError.
func IsDispatchError(err error) bool {
	var d *DispatchError
	return errors.As(err, &d)
}
