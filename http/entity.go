package http

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/ravindragullapalli/http-request/internal/argscheck"
)

// ContentLengthUnknown is the length hint for entities whose size cannot be
// determined up front.
const ContentLengthUnknown int64 = -1

// Entity is an opaque byte-producing request body with an optional declared
// content type and a best-effort length hint. The underlying reader is
// consumed at most once; entities are not reusable across dispatches.
type Entity struct {
	content       io.Reader
	contentType   string
	contentLength int64
}

// NewEntity wraps an arbitrary reader. Pass ContentLengthUnknown when the
// size is not known and "" when no content type should be declared.
func NewEntity(content io.Reader, contentType string, contentLength int64) (*Entity, error) {
	if err := argscheck.NotNil(content, "content"); err != nil {
		return nil, &ArgumentError{Msg: err.Error()}
	}
	if contentLength < 0 {
		contentLength = ContentLengthUnknown
	}
	return &Entity{
		content:       content,
		contentType:   contentType,
		contentLength: contentLength,
	}, nil
}

// NewStringEntity wraps a string payload as a UTF-8 text entity.
func NewStringEntity(payload string) *Entity {
	return &Entity{
		content:       strings.NewReader(payload),
		contentType:   "text/plain; charset=UTF-8",
		contentLength: int64(len(payload)),
	}
}

// NewBytesEntity wraps a byte slice with the given content type.
func NewBytesEntity(payload []byte, contentType string) *Entity {
	return &Entity{
		content:       bytes.NewReader(payload),
		contentType:   contentType,
		contentLength: int64(len(payload)),
	}
}

// NewJSONEntity marshals v and wraps the result as an application/json
// entity. Marshaling happens eagerly so the length hint is exact.
func NewJSONEntity(v any) (*Entity, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &DeserializationError{Err: err}
	}
	return &Entity{
		content:       bytes.NewReader(data),
		contentType:   "application/json; charset=UTF-8",
		contentLength: int64(len(data)),
	}, nil
}

// Content returns the underlying reader.
func (e *Entity) Content() io.Reader { return e.content }

// ContentType returns the declared content type, or "" if none was declared.
func (e *Entity) ContentType() string { return e.contentType }

// ContentLength returns the declared length, or ContentLengthUnknown.
func (e *Entity) ContentLength() int64 { return e.contentLength }
