package http

import (
	"net/http"
	"time"

	"github.com/ravindragullapalli/http-request/pkg/jsonpath"
	"github.com/ravindragullapalli/http-request/pkg/jsonschema"
)

// TimingInfo stores timing information captured while dispatching a request.
type TimingInfo struct {
	// StartTime is when the dispatch started
	StartTime time.Time

	// DNSLookupTime is the time spent looking up the DNS address
	DNSLookupTime time.Duration

	// TCPConnectTime is the time spent establishing a TCP connection
	TCPConnectTime time.Duration

	// TLSHandshakeTime is the time spent performing the TLS handshake (for HTTPS)
	TLSHandshakeTime time.Duration

	// TimeToFirstByte is the time from the last completed phase to the first
	// received response byte
	TimeToFirstByte time.Duration

	// TotalTime is the time from dispatch start to response headers received
	TotalTime time.Duration
}

// Response is the untyped result of a dispatch: an immutable status/header
// snapshot plus access to the (consume-once) body through a ResponseContext.
type Response struct {
	statusCode int
	status     string
	headers    http.Header
	context    *ResponseContext
	timing     TimingInfo
}

// StatusCode returns the HTTP status code.
func (r *Response) StatusCode() int { return r.statusCode }

// Status returns the HTTP status line, e.g. "200 OK".
func (r *Response) Status() string { return r.status }

// Headers returns the response headers.
func (r *Response) Headers() http.Header { return r.headers }

// Header returns the first value of the named header, or "".
func (r *Response) Header(name string) string { return r.headers.Get(name) }

// Context returns the response context wrapping the body entity.
func (r *Response) Context() *ResponseContext { return r.context }

// BodyAsString materializes the body as a string. See
// ResponseContext.ContentAsString for the exact semantics.
func (r *Response) BodyAsString() (string, error) {
	return r.context.ContentAsString()
}

// Close releases any unconsumed body. It is safe to call after the body has
// been read.
func (r *Response) Close() error { return r.context.discard() }

// Timing returns the timing captured for this dispatch.
func (r *Response) Timing() TimingInfo { return r.timing }

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.statusCode >= 200 && r.statusCode < 300
}

// IsRedirect reports whether the status code is in the 3xx range.
func (r *Response) IsRedirect() bool {
	return r.statusCode >= 300 && r.statusCode < 400
}

// IsClientError reports whether the status code is in the 4xx range.
func (r *Response) IsClientError() bool {
	return r.statusCode >= 400 && r.statusCode < 500
}

// IsServerError reports whether the status code is in the 5xx range.
func (r *Response) IsServerError() bool {
	return r.statusCode >= 500 && r.statusCode < 600
}

// Extract materializes the JSON body and extracts a single value using a
// JSONPath expression. This consumes the body; use ExtractAll when several
// values are needed from the same response.
func (r *Response) Extract(path string) (string, error) {
	body, err := r.BodyAsString()
	if err != nil {
		return "", err
	}
	return jsonpath.Extract(body, path)
}

// ExtractAll materializes the JSON body once and extracts a value for each
// named JSONPath expression.
func (r *Response) ExtractAll(paths map[string]string) (map[string]string, error) {
	body, err := r.BodyAsString()
	if err != nil {
		return nil, err
	}
	return jsonpath.ExtractAll(body, paths)
}

// ValidateSchema materializes the JSON body and validates it against a JSON
// Schema document. This consumes the body.
func (r *Response) ValidateSchema(schema string) (bool, error) {
	body, err := r.BodyAsString()
	if err != nil {
		return false, err
	}
	return jsonschema.Validate(body, schema)
}

// NoBody is the payload type of raw dispatch results. See WebTarget.RawRequest.
type NoBody struct{}

// ResponseHandler is the typed result of a dispatch: an immutable
// status/header snapshot plus either a deserialized payload or an absent-body
// indicator. Handlers returned by raw dispatches refuse content access
// entirely.
type ResponseHandler[T any] struct {
	statusCode int
	status     string
	headers    http.Header
	timing     TimingInfo
	value      T
	hasContent bool
	raw        bool
}

// StatusCode returns the HTTP status code.
func (h *ResponseHandler[T]) StatusCode() int { return h.statusCode }

// Status returns the HTTP status line.
func (h *ResponseHandler[T]) Status() string { return h.status }

// Headers returns the response headers.
func (h *ResponseHandler[T]) Headers() http.Header { return h.headers }

// Header returns the first value of the named header, or "".
func (h *ResponseHandler[T]) Header(name string) string { return h.headers.Get(name) }

// Timing returns the timing captured for this dispatch.
func (h *ResponseHandler[T]) Timing() TimingInfo { return h.timing }

// HasContent reports whether a payload was deserialized. It is always false
// for raw dispatch results.
func (h *ResponseHandler[T]) HasContent() bool { return h.hasContent }

// Get returns the deserialized payload. It fails with a UsageError on a raw
// dispatch result and with ErrNoContent when the response had no body.
func (h *ResponseHandler[T]) Get() (T, error) {
	var zero T
	if h.raw {
		return zero, &UsageError{Msg: "raw dispatch result carries no readable content"}
	}
	if !h.hasContent {
		return zero, ErrNoContent
	}
	return h.value, nil
}

// OrElse returns the deserialized payload, or def when none is available.
func (h *ResponseHandler[T]) OrElse(def T) T {
	if h.raw || !h.hasContent {
		return def
	}
	return h.value
}

// IsSuccess reports whether the status code is in the 2xx range.
func (h *ResponseHandler[T]) IsSuccess() bool {
	return h.statusCode >= 200 && h.statusCode < 300
}
