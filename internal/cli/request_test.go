package cli

import (
	"strings"
	"testing"

	httpx "github.com/ravindragullapalli/http-request/http"
)

func TestBuildTarget(t *testing.T) {
	hr := httpx.New()

	target, err := buildTarget(hr, "https://api.example.com/v1",
		[]string{"Accept: application/json", "X-Trace:abc"},
		[]string{"page=1", "limit=10"},
		false)
	if err != nil {
		t.Fatalf("Error building target: %v", err)
	}

	headers := target.Headers()
	if len(headers) != 2 {
		t.Fatalf("Expected 2 headers, got %d", len(headers))
	}
	if headers[0] != (httpx.Header{Name: "Accept", Value: "application/json"}) {
		t.Errorf("Expected trimmed header name/value, got %v", headers[0])
	}
	if headers[1] != (httpx.Header{Name: "X-Trace", Value: "abc"}) {
		t.Errorf("Expected header without space after colon parsed, got %v", headers[1])
	}

	url := target.URL()
	if !strings.Contains(url, "page=1") || !strings.Contains(url, "limit=10") {
		t.Errorf("Expected query parameters in URL, got %s", url)
	}
}

func TestBuildTarget_MalformedHeader(t *testing.T) {
	hr := httpx.New()

	_, err := buildTarget(hr, "https://api.example.com", []string{"no-colon-here"}, nil, false)
	if err == nil {
		t.Fatal("Expected an error for a header without a colon")
	}
	if !strings.Contains(err.Error(), "no-colon-here") {
		t.Errorf("Expected the bad header named in the error, got %v", err)
	}
}

func TestBuildTarget_BadURL(t *testing.T) {
	hr := httpx.New()

	if _, err := buildTarget(hr, "not-a-url", nil, nil, false); err == nil {
		t.Error("Expected an error for a URL without a scheme")
	}
}

func TestBuildTarget_QueryWithoutValue(t *testing.T) {
	hr := httpx.New()

	target, err := buildTarget(hr, "https://api.example.com", nil, []string{"flag"}, false)
	if err != nil {
		t.Fatalf("Error building target: %v", err)
	}

	params := target.Parameters()
	if len(params) != 1 || params[0] != (httpx.Param{Name: "flag", Value: ""}) {
		t.Errorf("Expected value-less parameter, got %v", params)
	}
}

func TestBuildTarget_BlankQueryName(t *testing.T) {
	hr := httpx.New()

	if _, err := buildTarget(hr, "https://api.example.com", nil, []string{"=value"}, false); err == nil {
		t.Error("Expected the builder's argument error to surface")
	}
}
