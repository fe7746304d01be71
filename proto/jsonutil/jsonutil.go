// Package jsonutil decodes JSON payloads returned by JSON-protocol services
// and reports decoding failures as DecodeError values.
package jsonutil

import (
	"encoding/json"
	"strings"
)

// DecodeError describes a failure to decode a JSON response body.
type DecodeError struct {
	// Message describes what could not be decoded.
	Message string
}

// Wrap converts an encoding/json failure into a DecodeError.
func Wrap(err error) *DecodeError {
	return &DecodeError{Message: err.Error()}
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return e.Message
}

// Decode unmarshals body into out, wrapping any failure.
func Decode(body []byte, out any) *DecodeError {
	if err := json.Unmarshal(body, out); err != nil {
		return Wrap(err)
	}
	return nil
}

// ErrorResponse is the error shape shared by JSON-protocol services.
type ErrorResponse struct {
	// Code is the error type with any namespace prefix stripped.
	Code    string
	Message string
}

type wireError struct {
	Type     string `json:"__type"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Message2 string `json:"Message"`
}

// DecodeErrorResponse parses a JSON-protocol error body. The error type may
// arrive namespaced ("com.amazonaws.service#ThrottlingException") or with a
// trailing detail segment after a colon; only the bare code is kept.
func DecodeErrorResponse(body []byte) (*ErrorResponse, *DecodeError) {
	var wire wireError
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, Wrap(err)
	}

	code := wire.Type
	if code == "" {
		code = wire.Code
	}
	if idx := strings.Index(code, ":"); idx != -1 {
		code = code[:idx]
	}
	if idx := strings.LastIndex(code, "#"); idx != -1 {
		code = code[idx+1:]
	}

	msg := wire.Message
	if msg == "" {
		msg = wire.Message2
	}

	return &ErrorResponse{Code: code, Message: msg}, nil
}
