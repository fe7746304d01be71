package rusoto

import (
	"github.com/hhatto/rusoto/credential"
	"github.com/hhatto/rusoto/request"
)

// Kind identifies which failure category an Error carries.
type Kind int

const (
	// KindService is a structured, service-defined error.
	KindService Kind = iota
	// KindServiceCommon is an error recognized by shape but shared across
	// all operations of the service.
	KindServiceCommon
	// KindHTTPDispatch is a transport-layer failure.
	KindHTTPDispatch
	// KindCredentials is a credential-resolution failure.
	KindCredentials
	// KindValidation is a server-side validation failure.
	KindValidation
	// KindParse is a response-decoding failure.
	KindParse
	// KindUnknown is a response that matched no recognized error shape.
	KindUnknown
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindService:
		return "service"
	case KindServiceCommon:
		return "service_common"
	case KindHTTPDispatch:
		return "http_dispatch"
	case KindCredentials:
		return "credentials"
	case KindValidation:
		return "validation"
	case KindParse:
		return "parse"
	case KindUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Error is the unified error returned by every client operation, generic
// over the service-specific error type E. Exactly one variant is active; the
// value is immutable after construction and safe to share across goroutines.
type Error[E error] struct {
	kind     Kind
	service  E
	text     string
	dispatch *request.DispatchError
	creds    *credential.Error
	response *request.BufferedResponse
}

// NewService wraps a service-defined error.
func NewService[E error](err E) *Error[E] {
	return &Error[E]{kind: KindService, service: err}
}

// NewServiceCommon wraps an error shared across all operations of a service.
func NewServiceCommon[E error](text string) *Error[E] {
	return &Error[E]{kind: KindServiceCommon, text: text}
}

// NewValidation wraps a server-side validation failure. The detail string is
// carried verbatim.
func NewValidation[E error](text string) *Error[E] {
	return &Error[E]{kind: KindValidation, text: text}
}

// NewUnknown wraps a response that matched no recognized error shape,
// preserving it for caller inspection.
func NewUnknown[E error](resp *request.BufferedResponse) *Error[E] {
	return &Error[E]{kind: KindUnknown, response: resp}
}

// Kind returns the active failure category.
func (e *Error[E]) Kind() Kind {
	return e.kind
}

// Service returns the service-defined error, if that variant is active.
func (e *Error[E]) Service() (E, bool) {
	if e.kind != KindService {
		var zero E
		return zero, false
	}
	return e.service, true
}

// ServiceCommon returns the common-service error text, if that variant is
// active.
func (e *Error[E]) ServiceCommon() (string, bool) {
	if e.kind != KindServiceCommon {
		return "", false
	}
	return e.text, true
}

// Dispatch returns the transport failure, if that variant is active.
func (e *Error[E]) Dispatch() (*request.DispatchError, bool) {
	if e.kind != KindHTTPDispatch {
		return nil, false
	}
	return e.dispatch, true
}

// Credentials returns the credential failure, if that variant is active.
func (e *Error[E]) Credentials() (*credential.Error, bool) {
	if e.kind != KindCredentials {
		return nil, false
	}
	return e.creds, true
}

// Validation returns the validation detail text, if that variant is active.
func (e *Error[E]) Validation() (string, bool) {
	if e.kind != KindValidation {
		return "", false
	}
	return e.text, true
}

// Parse returns the decode-failure text, if that variant is active.
func (e *Error[E]) Parse() (string, bool) {
	if e.kind != KindParse {
		return "", false
	}
	return e.text, true
}

// Unknown returns the buffered response, if that variant is active.
func (e *Error[E]) Unknown() (*request.BufferedResponse, bool) {
	if e.kind != KindUnknown {
		return nil, false
	}
	return e.response, true
}

// Error implements the error interface. Service, Credentials, and
// HTTPDispatch delegate to their payload's own description; the text
// variants return the carried text verbatim; Unknown renders the buffered
// body. The result may be empty when the source text was empty.
func (e *Error[E]) Error() string {
	switch e.kind {
	case KindService:
		return e.service.Error()
	case KindCredentials:
		return e.creds.Error()
	case KindHTTPDispatch:
		return e.dispatch.Error()
	case KindUnknown:
		return e.response.BodyAsString()
	default:
		return e.text
	}
}

// Unwrap returns the causal source. Only Service, Credentials, and
// HTTPDispatch carry one; the text variants are flattened leaves, even when
// the original failure had a deeper cause.
func (e *Error[E]) Unwrap() error {
	switch e.kind {
	case KindService:
		return e.service
	case KindCredentials:
		return e.creds
	case KindHTTPDispatch:
		return e.dispatch
	default:
		return nil
	}
}
