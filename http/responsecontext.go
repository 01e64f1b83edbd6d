package http

import (
	"bytes"
	"io"
	"math"
)

// defaultBufferSize seeds the materialization buffer when the entity does not
// declare a usable length hint; maxSeedCapacity bounds how much a declared
// length may preallocate.
const (
	defaultBufferSize = 8 * 1024
	maxSeedCapacity   = 1 << 20
)

// ResponseContext adapts a single received entity into content-access
// operations. It wraps exactly one response body for the lifetime of one
// response and is not reusable.
//
// The body is a consume-once resource: handing out the stream or
// materializing it as a string exhausts it, and any further access fails
// with ErrContentConsumed.
type ResponseContext struct {
	content       io.ReadCloser // nil when the response carries no body
	contentType   string        // raw Content-Type header value, "" if absent
	contentLength int64
	consumed      bool
}

func newResponseContext(content io.ReadCloser, contentType string, contentLength int64) *ResponseContext {
	if contentLength < 0 {
		contentLength = ContentLengthUnknown
	}
	return &ResponseContext{
		content:       content,
		contentType:   contentType,
		contentLength: contentLength,
	}
}

// Content returns the underlying byte stream unmodified. The caller owns the
// stream from that point on and must close it after reading.
func (rc *ResponseContext) Content() (io.ReadCloser, error) {
	if rc.content == nil {
		return nil, ErrNoContent
	}
	if rc.consumed {
		return nil, ErrContentConsumed
	}
	rc.consumed = true
	return rc.content, nil
}

// ContentAsString fully drains the stream and decodes it using the charset
// declared in the content type, falling back to a plain UTF-8 byte
// passthrough when none is declared.
//
// A response without a body fails with ErrNoContent; a present stream that
// produces zero bytes returns "" — callers can distinguish "no body" from
// "empty body". A declared length beyond what a 32-bit signed size can
// represent fails with a ResponseError before any buffering happens.
func (rc *ResponseContext) ContentAsString() (string, error) {
	if rc.content == nil {
		return "", ErrNoContent
	}
	if rc.consumed {
		return "", ErrContentConsumed
	}
	if rc.contentLength > math.MaxInt32 {
		return "", responseErrorf("content too large: declared length %d exceeds %d", rc.contentLength, math.MaxInt32)
	}

	rc.consumed = true
	defer rc.content.Close()

	// The declared length only seeds capacity; it is an untrusted hint, so
	// large values never drive the allocation beyond maxSeedCapacity.
	capacity := defaultBufferSize
	if rc.contentLength >= 0 {
		capacity = int(min(rc.contentLength, maxSeedCapacity))
	}

	buf := bytes.NewBuffer(make([]byte, 0, capacity))
	if _, err := io.Copy(buf, rc.content); err != nil {
		return "", &ResponseError{Err: err}
	}

	var charsetLabel string
	if ct, ok := rc.ContentType(); ok {
		charsetLabel = ct.Charset
	}
	decoded, err := decodeCharset(buf.Bytes(), charsetLabel)
	if err != nil {
		return "", &ResponseError{Err: err}
	}
	return decoded, nil
}

// ContentType parses and returns the declared content type. The second
// return value reports whether one is present and well formed.
func (rc *ResponseContext) ContentType() (ContentType, bool) {
	if rc.contentType == "" {
		return ContentType{}, false
	}
	ct, err := ParseContentType(rc.contentType)
	if err != nil {
		return ContentType{}, false
	}
	return ct, true
}

// ContentLength returns the declared length, or ContentLengthUnknown.
func (rc *ResponseContext) ContentLength() int64 { return rc.contentLength }

// discard drains and closes any unconsumed body so the transport can reuse
// the connection.
func (rc *ResponseContext) discard() error {
	if rc.content == nil || rc.consumed {
		return nil
	}
	rc.consumed = true
	_, _ = io.Copy(io.Discard, rc.content)
	return rc.content.Close()
}
