package http

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/ravindragullapalli/http-request/internal/argscheck"
)

// HttpMethod is an HTTP request method.
type HttpMethod string

// Supported HTTP methods.
const (
	GET     HttpMethod = "GET"
	PUT     HttpMethod = "PUT"
	POST    HttpMethod = "POST"
	DELETE  HttpMethod = "DELETE"
	HEAD    HttpMethod = "HEAD"
	OPTIONS HttpMethod = "OPTIONS"
	PATCH   HttpMethod = "PATCH"
	TRACE   HttpMethod = "TRACE"
)

// Header is a single request header. Header sequences preserve insertion
// order and permit duplicates; names compare case-insensitively but keep
// their original casing.
type Header struct {
	Name  string
	Value string
}

// Param is a single query parameter. Parameter sequences preserve insertion
// order and permit duplicate names.
type Param struct {
	Name  string
	Value string
}

// RequestConfig carries per-dispatch configuration consulted by the
// transport. The builder stores it without interpreting its contents.
type RequestConfig struct {
	// Timeout bounds the whole dispatch including body consumption.
	// Zero means the client default applies.
	Timeout time.Duration

	// DisableRedirects makes the transport return 3xx responses instead of
	// following them.
	DisableRedirects bool
}

// WebTarget accumulates request-shaping state for a single logical request
// and dispatches it. A WebTarget is a short-lived, non-thread-safe builder;
// create one per request from an HttpRequest factory.
//
// Mutators validate their input at the call site. A rejected call never
// mutates state: the first violation is recorded, exposed via Err, and
// surfaced again from any dispatch attempt.
type WebTarget struct {
	client  *Client
	uri     *url.URL
	headers []Header
	params  []Param
	config  *RequestConfig
	err     error
}

func (wt *WebTarget) fail(err error) *WebTarget {
	if wt.err == nil {
		wt.err = &ArgumentError{Msg: err.Error()}
	}
	return wt
}

// Err returns the first argument error recorded by a builder call, or nil.
func (wt *WebTarget) Err() error { return wt.err }

// Path appends a path segment to the target URI.
func (wt *WebTarget) Path(segment string) *WebTarget {
	if err := argscheck.NotBlank(segment, "segment"); err != nil {
		return wt.fail(err)
	}
	wt.uri.Path = joinPath(wt.uri.Path, segment)
	return wt
}

// AddHeader appends a header, preserving insertion order. Duplicates are
// permitted and never collapsed.
func (wt *WebTarget) AddHeader(name, value string) *WebTarget {
	if err := argscheck.NotBlank(name, "name"); err != nil {
		return wt.fail(err)
	}
	wt.headers = append(wt.headers, Header{Name: name, Value: value})
	return wt
}

// AddHeaders appends the given headers in order.
func (wt *WebTarget) AddHeaders(headers ...Header) *WebTarget {
	for _, h := range headers {
		if err := argscheck.NotBlank(h.Name, "name"); err != nil {
			return wt.fail(err)
		}
	}
	wt.headers = append(wt.headers, headers...)
	return wt
}

// UpdateHeader replaces the first header whose name matches
// case-insensitively, keeping its position. When no header matches, the
// header is appended.
func (wt *WebTarget) UpdateHeader(name, value string) *WebTarget {
	if err := argscheck.NotBlank(name, "name"); err != nil {
		return wt.fail(err)
	}
	for i, h := range wt.headers {
		if strings.EqualFold(h.Name, name) {
			wt.headers[i] = Header{Name: name, Value: value}
			return wt
		}
	}
	wt.headers = append(wt.headers, Header{Name: name, Value: value})
	return wt
}

// RemoveHeader removes every header equal to the given one (name compared
// case-insensitively, value exactly).
func (wt *WebTarget) RemoveHeader(header Header) *WebTarget {
	kept := wt.headers[:0]
	for _, h := range wt.headers {
		if strings.EqualFold(h.Name, header.Name) && h.Value == header.Value {
			continue
		}
		kept = append(kept, h)
	}
	wt.headers = kept
	return wt
}

// RemoveHeaders removes every header with the given name, compared
// case-insensitively.
func (wt *WebTarget) RemoveHeaders(name string) *WebTarget {
	kept := wt.headers[:0]
	for _, h := range wt.headers {
		if strings.EqualFold(h.Name, name) {
			continue
		}
		kept = append(kept, h)
	}
	wt.headers = kept
	return wt
}

// AddContentType sets the Content-Type header for the request.
func (wt *WebTarget) AddContentType(ct ContentType) *WebTarget {
	return wt.AddHeader("Content-Type", ct.String())
}

// AddParameter appends a single query parameter, preserving insertion order.
func (wt *WebTarget) AddParameter(name, value string) *WebTarget {
	if err := argscheck.NotBlank(name, "name"); err != nil {
		return wt.fail(err)
	}
	wt.params = append(wt.params, Param{Name: name, Value: value})
	return wt
}

// AddParameterList appends pre-built parameters in order.
func (wt *WebTarget) AddParameterList(params ...Param) *WebTarget {
	for _, p := range params {
		if err := argscheck.NotBlank(p.Name, "name"); err != nil {
			return wt.fail(err)
		}
	}
	wt.params = append(wt.params, params...)
	return wt
}

// AddParameters appends parameters from a flat alternating name/value
// sequence. The sequence must be non-empty and of even length; a violating
// call records an argument error and leaves the parameter set untouched.
func (wt *WebTarget) AddParameters(nameValues ...string) *WebTarget {
	if err := argscheck.Check(len(nameValues) != 0, "length of name/value sequence may not be zero"); err != nil {
		return wt.fail(err)
	}
	if err := argscheck.Check(len(nameValues)%2 == 0, "length of name/value sequence may not be odd"); err != nil {
		return wt.fail(err)
	}

	pairs := make([]Param, 0, len(nameValues)/2)
	for i := 0; i < len(nameValues); i += 2 {
		if err := argscheck.NotBlank(nameValues[i], "name"); err != nil {
			return wt.fail(err)
		}
		pairs = append(pairs, Param{Name: nameValues[i], Value: nameValues[i+1]})
	}
	wt.params = append(wt.params, pairs...)
	return wt
}

// AddParameterMap appends parameters from a map. Keys are added in sorted
// order so the resulting query string is deterministic.
func (wt *WebTarget) AddParameterMap(params map[string]string) *WebTarget {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if wt.AddParameter(k, params[k]).err != nil {
			break
		}
	}
	return wt
}

// AddQueryString parses a raw query string ("a=1&b=2") and appends the
// resulting parameters in order. Percent-escapes decode as UTF-8.
func (wt *WebTarget) AddQueryString(query string) *WebTarget {
	return wt.AddQueryStringWithCharset(query, "")
}

// AddQueryStringWithCharset is AddQueryString with an explicit charset used
// to decode percent-escaped bytes.
func (wt *WebTarget) AddQueryStringWithCharset(query, charsetLabel string) *WebTarget {
	params, err := parseQueryString(query, charsetLabel)
	if err != nil {
		return wt.fail(err)
	}
	wt.params = append(wt.params, params...)
	return wt
}

// SetRequestConfig attaches per-dispatch configuration. The builder passes
// it through to the transport untouched.
func (wt *WebTarget) SetRequestConfig(config RequestConfig) *WebTarget {
	wt.config = &config
	return wt
}

// Headers returns a copy of the accumulated header sequence.
func (wt *WebTarget) Headers() []Header {
	out := make([]Header, len(wt.headers))
	copy(out, wt.headers)
	return out
}

// Parameters returns a copy of the accumulated parameter sequence.
func (wt *WebTarget) Parameters() []Param {
	out := make([]Param, len(wt.params))
	copy(out, wt.params)
	return out
}

// URL returns the fully assembled target URL, with accumulated parameters
// appended to any query already present on the base URI in insertion order.
func (wt *WebTarget) URL() string {
	u := *wt.uri
	if q := encodeParams(wt.params); q != "" {
		if u.RawQuery != "" {
			u.RawQuery += "&" + q
		} else {
			u.RawQuery = q
		}
	}
	return u.String()
}

// Request dispatches the accumulated request without a body and returns the
// raw response. It blocks until the transport completes or fails; transport
// failures surface as a ResponseError.
func (wt *WebTarget) Request(method HttpMethod) (*Response, error) {
	return wt.RequestWithContext(context.Background(), method, nil)
}

// RequestEntity dispatches the accumulated request with the given body
// entity. A nil entity means no body.
func (wt *WebTarget) RequestEntity(method HttpMethod, entity *Entity) (*Response, error) {
	return wt.RequestWithContext(context.Background(), method, entity)
}

// RequestString dispatches the accumulated request with the payload wrapped
// into a UTF-8 text entity.
func (wt *WebTarget) RequestString(method HttpMethod, payload string) (*Response, error) {
	return wt.RequestWithContext(context.Background(), method, NewStringEntity(payload))
}

// RequestWithContext is the general dispatch form all other terminal
// operations delegate to.
func (wt *WebTarget) RequestWithContext(ctx context.Context, method HttpMethod, entity *Entity) (*Response, error) {
	if wt.err != nil {
		return nil, wt.err
	}
	if err := argscheck.NotBlank(string(method), "method"); err != nil {
		return nil, &ArgumentError{Msg: err.Error()}
	}
	return wt.client.do(ctx, method, wt.URL(), wt.headers, entity, wt.config)
}

// RawRequest dispatches the accumulated request for callers uninterested in
// the body. The body is drained and discarded so the transport can reuse the
// connection; any content access on the result fails with a UsageError.
func (wt *WebTarget) RawRequest(method HttpMethod) (*ResponseHandler[NoBody], error) {
	resp, err := wt.Request(method)
	if err != nil {
		return nil, err
	}
	if err := resp.Close(); err != nil {
		return nil, &ResponseError{Err: err}
	}
	return &ResponseHandler[NoBody]{
		statusCode: resp.statusCode,
		status:     resp.status,
		headers:    resp.headers,
		timing:     resp.timing,
		raw:        true,
	}, nil
}

func joinPath(base, segment string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(segment, "/")
}
