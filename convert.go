package rusoto

import (
	"github.com/hhatto/rusoto/credential"
	"github.com/hhatto/rusoto/proto/jsonutil"
	"github.com/hhatto/rusoto/proto/xmlutil"
	"github.com/hhatto/rusoto/request"
)

// Conversion rules from collaborator failures into the envelope. Each rule
// is total: every input maps to exactly one variant and conversion itself
// never fails. The rules are one-way and lossy for the text variants.

// FromXML converts an XML decode failure into the Parse variant. Which
// serialization format failed is not recorded.
func FromXML[E error](err *xmlutil.ParseError) *Error[E] {
	return &Error[E]{kind: KindParse, text: err.Message}
}

// FromJSON converts a JSON decode failure into the Parse variant.
func FromJSON[E error](err *jsonutil.DecodeError) *Error[E] {
	return &Error[E]{kind: KindParse, text: err.Message}
}

// FromCredentials wraps a credential-resolution failure unchanged.
func FromCredentials[E error](err *credential.Error) *Error[E] {
	return &Error[E]{kind: KindCredentials, creds: err}
}

// FromDispatch wraps a transport failure unchanged.
func FromDispatch[E error](err *request.DispatchError) *Error[E] {
	return &Error[E]{kind: KindHTTPDispatch, dispatch: err}
}

// FromIO coerces a raw I/O fault into a transport failure and wraps it.
// I/O faults and dispatch faults share one variant downstream.
func FromIO[E error](err error) *Error[E] {
	return FromDispatch[E](request.FromIOError(err))
}
