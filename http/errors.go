package http

import (
	"errors"
	"fmt"
)

// ErrNoContent is returned by content accessors when the response carries no
// body at all. An empty body ("") is not the same thing: a present stream
// that produces zero bytes yields an empty string and no error.
var ErrNoContent = errors.New("response has no content")

// ErrContentConsumed is returned when a response body is read a second time.
// Response streams are consume-once resources; there is no replay.
var ErrContentConsumed = errors.New("response content already consumed")

// ArgumentError reports invalid input to a builder method. It is detected at
// the call site and recorded by the builder; it is never deferred silently
// to dispatch.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return "invalid argument: " + e.Msg
}

func argErrorf(format string, args ...any) *ArgumentError {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...)}
}

// ResponseError reports a response-level failure: an I/O problem, an aborted
// connection, or content that cannot be materialized (e.g. oversized).
type ResponseError struct {
	Err error
}

func (e *ResponseError) Error() string {
	return "response error: " + e.Err.Error()
}

func (e *ResponseError) Unwrap() error { return e.Err }

func responseErrorf(format string, args ...any) *ResponseError {
	return &ResponseError{Err: fmt.Errorf(format, args...)}
}

// RequestError reports an HTTP-protocol-level failure: the server answered,
// but with a non-success status while the caller asked for a typed body.
type RequestError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *RequestError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("request failed with status %s: %s", e.Status, string(e.Body))
	}
	return "request failed with status " + e.Status
}

// DeserializationError reports a body that could not be decoded into the
// requested type.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return "cannot deserialize response content: " + e.Err.Error()
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// UsageError reports an API misuse, such as reading a body from a result
// that was deliberately requested without one.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return "usage error: " + e.Msg
}
