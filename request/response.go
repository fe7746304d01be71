package request

import "net/http"

// Request describes an outbound service request.
type Request struct {
	// Operation is the service operation name, used for tracing and logging.
	Operation string
	// Method is the HTTP method (GET, POST, PUT, DELETE, etc).
	Method string
	// Path is appended to the client's Endpoint. Can be a full URL if
	// Endpoint is empty.
	Path string
	// Headers are request-specific headers (merged with client defaults).
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// Body is the raw request payload. May be nil.
	Body []byte
}

// BufferedResponse is a fully-read, in-memory capture of a service response,
// retained so callers can inspect it when no recognized error shape matches.
type BufferedResponse struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// BodyAsString renders the body as text. An empty body renders as the empty
// string; no placeholder is substituted.
func (r *BufferedResponse) BodyAsString() string {
	return string(r.Body)
}

// Header returns the value of the named header, using canonical form lookup.
func (r *BufferedResponse) Header(key string) string {
	if v, ok := r.Headers[key]; ok {
		return v
	}
	return r.Headers[http.CanonicalHeaderKey(key)]
}

// IsSuccess returns true if the status code is 2xx.
func (r *BufferedResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *BufferedResponse) IsError() bool {
	return r.StatusCode >= 400
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
