package output

import (
	"strings"
	"testing"

	nethttp "net/http"
	"net/http/httptest"

	httpx "github.com/ravindragullapalli/http-request/http"
)

func TestFormatter_FormatRequest(t *testing.T) {
	// Create formatter
	formatter := NewFormatter(true, true) // verbose, no color

	// Create target
	hr := httpx.New()
	target, err := hr.Target("https://api.example.com")
	if err != nil {
		t.Fatalf("Error creating target: %v", err)
	}
	target.Path("users").
		AddHeader("Accept", "application/json").
		AddHeader("Authorization", "Bearer token123").
		AddParameter("page", "1").
		AddParameter("limit", "10")

	// Format request
	output := formatter.FormatRequest(httpx.GET, target)

	// Check output
	expectedParts := []string{
		"REQUEST: GET https://api.example.com/users",
		"Headers:",
		"Accept: application/json",
		"Authorization: Bearer token123",
	}

	for _, part := range expectedParts {
		if !strings.Contains(output, part) {
			t.Errorf("Expected output to contain '%s', but it doesn't", part)
		}
	}

	// Check query parameters
	if !strings.Contains(output, "?") ||
		!strings.Contains(output, "page=1") ||
		!strings.Contains(output, "limit=10") {
		t.Errorf("Expected output to contain query parameters, got: %s", output)
	}
}

func TestFormatter_FormatRequestWithoutHeaders(t *testing.T) {
	formatter := NewFormatter(false, true)

	hr := httpx.New()
	target, err := hr.Target("https://api.example.com")
	if err != nil {
		t.Fatalf("Error creating target: %v", err)
	}

	output := formatter.FormatRequest(httpx.DELETE, target)
	if !strings.Contains(output, "REQUEST: DELETE https://api.example.com") {
		t.Errorf("Expected request line, got: %s", output)
	}
	if strings.Contains(output, "Headers:") {
		t.Errorf("Expected no headers section without headers, got: %s", output)
	}
}

// dispatchTestResponse runs one request against a canned handler and returns
// the response plus its materialized body, as the formatter expects them.
func dispatchTestResponse(t *testing.T, handler nethttp.HandlerFunc) (*httpx.Response, string) {
	t.Helper()

	server := httptest.NewServer(handler)
	defer server.Close()

	target, err := httpx.New().Target(server.URL)
	if err != nil {
		t.Fatalf("Error creating target: %v", err)
	}
	resp, err := target.Get()
	if err != nil {
		t.Fatalf("Error dispatching request: %v", err)
	}
	body, err := resp.BodyAsString()
	if err != nil {
		t.Fatalf("Error reading response body: %v", err)
	}
	return resp, body
}

func TestFormatter_FormatResponse(t *testing.T) {
	// Create formatter
	formatter := NewFormatter(true, true) // verbose, no color

	resp, body := dispatchTestResponse(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Rate-Limit", "100")
		w.Write([]byte(`{"id":1,"name":"John Doe","email":"john@example.com"}`))
	})

	// Format response
	output := formatter.FormatResponse(resp, body)

	// Check output
	expectedParts := []string{
		"RESPONSE: 200 OK",
		"Timing:",
		"Total:",
		"Headers:",
		"Content-Type: application/json",
		"X-Rate-Limit: 100",
		"Body:",
		`"name": "John Doe"`,
		`"email": "john@example.com"`,
	}

	for _, part := range expectedParts {
		if !strings.Contains(output, part) {
			t.Errorf("Expected output to contain '%s', but it doesn't", part)
		}
	}
}

func TestFormatter_FormatResponseNonVerbose(t *testing.T) {
	formatter := NewFormatter(false, true)

	resp, body := dispatchTestResponse(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("plain text body"))
	})

	output := formatter.FormatResponse(resp, body)

	if !strings.Contains(output, "RESPONSE: 200 OK") {
		t.Errorf("Expected status line, got: %s", output)
	}
	if strings.Contains(output, "Timing:") || strings.Contains(output, "Headers:") {
		t.Errorf("Expected no timing/header sections without verbose, got: %s", output)
	}
	// Non-JSON bodies pass through unformatted, indented.
	if !strings.Contains(output, "plain text body") {
		t.Errorf("Expected body in output, got: %s", output)
	}
}

func TestFormatter_FormatResponseEmptyBody(t *testing.T) {
	formatter := NewFormatter(false, true)

	resp, body := dispatchTestResponse(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(200)
	})

	output := formatter.FormatResponse(resp, body)
	if strings.Contains(output, "Body:") {
		t.Errorf("Expected no body section for an empty body, got: %s", output)
	}
}

func TestFormatJSONString(t *testing.T) {
	pretty := formatJSONString(`{"a":1,"b":{"c":2}}`)
	if !strings.Contains(pretty, "\"a\": 1") || !strings.Contains(pretty, "  \"c\": 2") {
		t.Errorf("Expected indented JSON, got: %s", pretty)
	}

	passthrough := formatJSONString("not json at all")
	if passthrough != "not json at all" {
		t.Errorf("Expected non-JSON passed through unchanged, got: %s", passthrough)
	}
}

func TestIndentBody(t *testing.T) {
	got := indentBody("line1\nline2\n")
	if got != "    line1\n    line2\n" {
		t.Errorf("Expected each line indented, got: %q", got)
	}
}
