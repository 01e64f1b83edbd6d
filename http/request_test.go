package http

import (
	"errors"
	"net/url"
	"testing"
)

func TestHttpRequest_Target(t *testing.T) {
	hr := New()

	wt, err := hr.Target("https://api.example.com/v1")
	if err != nil {
		t.Fatalf("Error creating target: %v", err)
	}
	if got := wt.URL(); got != "https://api.example.com/v1" {
		t.Errorf("Expected bound URI, got %s", got)
	}
}

func TestHttpRequest_TargetValidation(t *testing.T) {
	hr := New()

	tests := []struct {
		name string
		uri  string
	}{
		{"blank", "   "},
		{"malformed", "http://exa mple.com/%zz"},
		{"missing scheme", "api.example.com"},
		{"unsupported scheme", "ftp://example.com"},
		{"missing host", "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hr.Target(tt.uri)
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Errorf("Expected ArgumentError for %q, got %v", tt.uri, err)
			}
		})
	}
}

func TestHttpRequest_TargetURLNil(t *testing.T) {
	hr := New()

	_, err := hr.TargetURL(nil)
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Errorf("Expected ArgumentError for nil URL, got %v", err)
	}
}

func TestHttpRequest_TargetURLCopies(t *testing.T) {
	hr := New()

	parsed, _ := url.Parse("http://example.com")
	wt, err := hr.TargetURL(parsed)
	if err != nil {
		t.Fatalf("Error creating target: %v", err)
	}

	wt.Path("users")
	if parsed.Path != "" {
		t.Error("Target mutation leaked into the caller's URL")
	}
}

func TestHttpRequest_TargetsAreIndependent(t *testing.T) {
	hr := New()

	a, _ := hr.Target("http://example.com")
	b, _ := hr.Target("http://example.com")

	a.AddHeader("X-One", "1").Path("alpha")
	if len(b.Headers()) != 0 || b.URL() != "http://example.com" {
		t.Error("Targets must not share builder state")
	}
}

func TestHttpRequest_MustTargetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustTarget to panic on malformed uri")
		}
	}()
	New().MustTarget("not a uri")
}
