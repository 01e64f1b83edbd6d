package http

import (
	"fmt"
	"mime"
	"net/url"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// ContentType is a parsed Content-Type header value: a mime type plus an
// optional charset parameter.
type ContentType struct {
	MimeType string
	Charset  string
}

// ParseContentType parses a Content-Type header value.
func ParseContentType(value string) (ContentType, error) {
	mediaType, params, err := mime.ParseMediaType(value)
	if err != nil {
		return ContentType{}, fmt.Errorf("malformed content type %q: %w", value, err)
	}
	return ContentType{
		MimeType: mediaType,
		Charset:  params["charset"],
	}, nil
}

func (ct ContentType) String() string {
	if ct.Charset == "" {
		return ct.MimeType
	}
	return ct.MimeType + "; charset=" + ct.Charset
}

// lookupCharset resolves a charset label to an encoding. The empty label and
// any UTF-8 alias resolve to nil, meaning bytes pass through undecoded.
func lookupCharset(label string) (encoding.Encoding, error) {
	if label == "" || strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "utf8") {
		return nil, nil
	}
	enc, _ := charset.Lookup(label)
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc, nil
}

// decodeCharset decodes raw bytes using the named charset. An empty name
// means the platform default interpretation, which in Go is a plain UTF-8
// byte passthrough.
func decodeCharset(data []byte, label string) (string, error) {
	enc, err := lookupCharset(label)
	if err != nil {
		return "", err
	}
	if enc == nil {
		return string(data), nil
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding content as %q: %w", label, err)
	}
	return string(decoded), nil
}

// parseQueryString parses a raw query string ("a=1&b=2") into parameters,
// preserving order and duplicates. Percent-escapes decode to bytes in the
// named charset; an empty charset means UTF-8.
func parseQueryString(query, charsetLabel string) ([]Param, error) {
	enc, err := lookupCharset(charsetLabel)
	if err != nil {
		return nil, err
	}

	query = strings.TrimPrefix(query, "?")

	var params []Param
	for _, segment := range strings.Split(query, "&") {
		if segment == "" {
			continue
		}
		name, value, _ := strings.Cut(segment, "=")

		name, err := unescapeQueryComponent(name, enc)
		if err != nil {
			return nil, err
		}
		value, err = unescapeQueryComponent(value, enc)
		if err != nil {
			return nil, err
		}

		params = append(params, Param{Name: name, Value: value})
	}
	return params, nil
}

func unescapeQueryComponent(s string, enc encoding.Encoding) (string, error) {
	unescaped, err := url.QueryUnescape(s)
	if err != nil {
		return "", fmt.Errorf("malformed query component %q: %w", s, err)
	}
	if enc == nil {
		return unescaped, nil
	}
	decoded, err := enc.NewDecoder().Bytes([]byte(unescaped))
	if err != nil {
		return "", fmt.Errorf("decoding query component %q: %w", s, err)
	}
	return string(decoded), nil
}

// encodeParams encodes parameters into a raw query string, preserving the
// insertion order. url.Values is deliberately not used here: its Encode
// sorts by key, which would reorder duplicate-permitting parameter lists.
func encodeParams(params []Param) string {
	var sb strings.Builder
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}
