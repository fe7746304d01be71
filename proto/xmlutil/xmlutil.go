// Package xmlutil decodes XML error payloads returned by query-protocol
// services and reports decoding failures as ParseError values.
package xmlutil

import (
	"encoding/xml"
	"fmt"
)

// ParseError describes a failure to decode an XML response body.
type ParseError struct {
	// Message describes what could not be decoded.
	Message string
}

// NewParseError creates a parse error with the given message.
func NewParseError(message string) *ParseError {
	return &ParseError{Message: message}
}

// Wrap converts an encoding/xml failure into a ParseError.
func Wrap(err error) *ParseError {
	return &ParseError{Message: err.Error()}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Message
}

// ErrorResponse is the error shape shared by query-protocol services.
type ErrorResponse struct {
	Code      string
	Message   string
	RequestID string
}

// envelope covers both wrappers seen in the wild: <ErrorResponse><Error>...
// and <Response><Errors><Error>... (EC2 style).
type envelope struct {
	XMLName    xml.Name
	Error      *wireError  `xml:"Error"`
	Errors     *wireErrors `xml:"Errors"`
	RequestID  string      `xml:"RequestId"`
	RequestID2 string      `xml:"RequestID"`
}

type wireErrors struct {
	Error []wireError `xml:"Error"`
}

type wireError struct {
	Code    string `xml:"Code"`
	Message string `xml:"Message"`
}

// DecodeErrorResponse extracts the error code, message, and request id from
// an XML error body. A body that does not decode as XML yields a ParseError;
// a body that decodes but carries no <Error> element yields an ErrorResponse
// with empty Code so the caller can fall back to its unknown handling.
func DecodeErrorResponse(body []byte) (*ErrorResponse, *ParseError) {
	var env envelope
	if err := xml.Unmarshal(body, &env); err != nil {
		return nil, NewParseError(fmt.Sprintf("decode error response: %v", err))
	}

	resp := &ErrorResponse{RequestID: env.RequestID}
	if resp.RequestID == "" {
		resp.RequestID = env.RequestID2
	}

	switch {
	case env.Error != nil:
		resp.Code = env.Error.Code
		resp.Message = env.Error.Message
	case env.Errors != nil && len(env.Errors.Error) > 0:
		resp.Code = env.Errors.Error[0].Code
		resp.Message = env.Errors.Error[0].Message
	}

	return resp, nil
}
