package http

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/http/httptrace"
	"time"

	"github.com/ravindragullapalli/http-request/metrics"
)

// Client binds the builder surface to the underlying net/http transport.
// Connection pooling, TLS, redirects and wire I/O are entirely the
// transport's concern; this layer only shapes requests and wraps responses.
//
// Client is safe for concurrent use by multiple goroutines.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	recorder   *metrics.Recorder
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// NewClient creates a transport client with the given options.
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithTimeout sets the default timeout for every dispatch. A per-dispatch
// RequestConfig timeout takes precedence. The default is 30 seconds.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithBaseHeader adds a header applied to every dispatched request unless
// the target sets one with the same name.
func WithBaseHeader(name, value string) ClientOption {
	return func(c *Client) {
		c.headers[name] = value
	}
}

// WithTransport sets the underlying round tripper.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// WithHTTPClient replaces the underlying net/http client entirely.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRecorder attaches a latency recorder fed by every dispatch.
func WithRecorder(rec *metrics.Recorder) ClientOption {
	return func(c *Client) {
		c.recorder = rec
	}
}

// do executes one request. Transport failures surface as a ResponseError;
// the response body is handed over unread so the caller controls
// materialization.
func (c *Client) do(ctx context.Context, method HttpMethod, url string, headers []Header, entity *Entity, config *RequestConfig) (*Response, error) {
	var body io.Reader
	if entity != nil {
		body = entity.Content()
	}
	// The reader goes through NewRequestWithContext so net/http can derive
	// GetBody for bytes/strings readers; without it the transport cannot
	// replay the body when following a 307/308 redirect.
	req, err := http.NewRequestWithContext(ctx, string(method), url, body)
	if err != nil {
		return nil, argErrorf("building request for %q: %v", url, err)
	}

	if entity != nil {
		if entity.ContentLength() >= 0 {
			req.ContentLength = entity.ContentLength()
		}
		if entity.ContentType() != "" {
			req.Header.Set("Content-Type", entity.ContentType())
		}
	}

	for name, value := range c.headers {
		req.Header.Set(name, value)
	}
	// Target headers are added, not set: duplicates are deliberate.
	for _, h := range headers {
		req.Header.Add(h.Name, h.Value)
	}

	timing := TimingInfo{StartTime: time.Now()}
	req = req.WithContext(httptrace.WithClientTrace(req.Context(), newTimingTrace(&timing)))

	resp, err := c.transportFor(config).Do(req)
	timing.TotalTime = time.Since(timing.StartTime)

	if c.recorder != nil {
		c.recorder.Record(timing.TotalTime, err == nil)
	}
	if err != nil {
		return nil, &ResponseError{Err: err}
	}

	return &Response{
		statusCode: resp.StatusCode,
		status:     resp.Status,
		headers:    resp.Header,
		timing:     timing,
		context:    wrapResponseBody(method, resp),
	}, nil
}

// transportFor applies per-dispatch configuration. The base client is never
// mutated; a configured dispatch runs on a shallow copy.
func (c *Client) transportFor(config *RequestConfig) *http.Client {
	if config == nil {
		return c.httpClient
	}
	hc := *c.httpClient
	if config.Timeout > 0 {
		hc.Timeout = config.Timeout
	}
	if config.DisableRedirects {
		hc.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
	return &hc
}

// wrapResponseBody adapts the transport's entity into a ResponseContext.
// HEAD responses and status codes defined to carry no body (204, 304) yield
// an absent stream, which is distinct from a present-but-empty one.
func wrapResponseBody(method HttpMethod, resp *http.Response) *ResponseContext {
	if method == HEAD || resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotModified {
		resp.Body.Close()
		return newResponseContext(nil, resp.Header.Get("Content-Type"), resp.ContentLength)
	}
	return newResponseContext(resp.Body, resp.Header.Get("Content-Type"), resp.ContentLength)
}

// newTimingTrace captures per-phase timing the same way a client trace sees
// it: each phase measured from the end of the previous completed one.
func newTimingTrace(timing *TimingInfo) *httptrace.ClientTrace {
	var dnsStart, connectStart, tlsStart time.Time
	lastPhaseEnd := timing.StartTime

	return &httptrace.ClientTrace{
		DNSStart: func(httptrace.DNSStartInfo) {
			dnsStart = time.Now()
		},
		DNSDone: func(httptrace.DNSDoneInfo) {
			now := time.Now()
			timing.DNSLookupTime = now.Sub(dnsStart)
			lastPhaseEnd = now
		},
		ConnectStart: func(network, addr string) {
			connectStart = time.Now()
		},
		ConnectDone: func(network, addr string, err error) {
			if err == nil {
				now := time.Now()
				timing.TCPConnectTime = now.Sub(connectStart)
				lastPhaseEnd = now
			}
		},
		TLSHandshakeStart: func() {
			tlsStart = time.Now()
		},
		TLSHandshakeDone: func(state tls.ConnectionState, err error) {
			if err == nil {
				now := time.Now()
				timing.TLSHandshakeTime = now.Sub(tlsStart)
				lastPhaseEnd = now
			}
		},
		GotFirstResponseByte: func() {
			timing.TimeToFirstByte = time.Since(lastPhaseEnd)
		},
	}
}
