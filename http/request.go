package http

import (
	"fmt"
	"net/url"

	"github.com/ravindragullapalli/http-request/internal/argscheck"
)

// HttpRequest is the entry point to the API, binding a transport client and
// producing web resource targets. HttpRequest instances are immutable and
// safe to share across goroutines; the WebTargets they produce are not.
type HttpRequest struct {
	client *Client
}

// New creates an HttpRequest factory. Options configure the underlying
// transport client.
//
// Example:
//
//	hr := http.New(
//	    http.WithTimeout(30*time.Second),
//	    http.WithBaseHeader("Authorization", "Bearer token"),
//	)
//
//	target, err := hr.Target("https://api.example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := target.Path("users").AddParameter("limit", "10").Get()
func New(options ...ClientOption) *HttpRequest {
	return &HttpRequest{client: NewClient(options...)}
}

// Target builds a new web resource target bound to the given URI. A blank or
// malformed URI fails here, at target creation, never later at dispatch.
func (hr *HttpRequest) Target(uri string) (*WebTarget, error) {
	if err := argscheck.NotBlank(uri, "uri"); err != nil {
		return nil, &ArgumentError{Msg: err.Error()}
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, argErrorf("malformed uri %q: %v", uri, err)
	}
	return hr.TargetURL(parsed)
}

// TargetURL builds a new web resource target bound to an already parsed URL.
func (hr *HttpRequest) TargetURL(u *url.URL) (*WebTarget, error) {
	if u == nil {
		return nil, &ArgumentError{Msg: `parameter "url" may not be nil`}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, argErrorf("uri %q must use the http or https scheme", u.String())
	}
	if u.Host == "" {
		return nil, argErrorf("uri %q must include a host", u.String())
	}

	// Copy so mutations on the target never leak back into the caller's URL.
	bound := *u
	return &WebTarget{client: hr.client, uri: &bound}, nil
}

// MustTarget is Target for static URIs known to be well formed; it panics on
// a malformed one.
func (hr *HttpRequest) MustTarget(uri string) *WebTarget {
	wt, err := hr.Target(uri)
	if err != nil {
		panic(fmt.Sprintf("http: MustTarget(%q): %v", uri, err))
	}
	return wt
}
