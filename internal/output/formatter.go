// Package output formats dispatched requests and their responses for
// terminal display.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	httpx "github.com/ravindragullapalli/http-request/http"
)

// Formatter renders requests and responses as text. Response bodies are
// consume-once, so the caller materializes the body and passes it in.
type Formatter struct {
	Verbose bool
	NoColor bool
	scheme  *ColorScheme
}

// NewFormatter creates a formatter with the given options.
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
		scheme:  scheme,
	}
}

// FormatRequest renders the request line and accumulated headers of a target
// about to be dispatched.
func (f *Formatter) FormatRequest(method httpx.HttpMethod, target *httpx.WebTarget) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n",
		f.scheme.Method.Sprint(string(method)),
		f.scheme.URL.Sprint(target.URL())))

	headers := target.Headers()
	if f.Verbose || len(headers) > 0 {
		buf.WriteString("  Headers:\n")
		for _, h := range headers {
			buf.WriteString(fmt.Sprintf("    %s: %s\n",
				f.scheme.HeaderKey.Sprint(h.Name),
				f.scheme.HeaderValue.Sprint(h.Value)))
		}
	}

	return buf.String()
}

// FormatResponse renders the status line, headers when verbose, timing when
// verbose, and the already-materialized body.
func (f *Formatter) FormatResponse(resp *httpx.Response, body string) string {
	var buf strings.Builder

	statusColor := f.scheme.StatusError
	if resp.IsSuccess() {
		statusColor = f.scheme.StatusOK
	} else if resp.IsRedirect() {
		statusColor = f.scheme.StatusWarn
	}

	buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s (%dms)\n",
		statusColor.Sprint(resp.Status()),
		resp.Timing().TotalTime.Milliseconds()))

	if f.Verbose {
		buf.WriteString("  Timing:\n")
		timing := resp.Timing()
		buf.WriteString(fmt.Sprintf("    DNS Lookup:         %dms\n", timing.DNSLookupTime.Milliseconds()))
		buf.WriteString(fmt.Sprintf("    TCP Connection:     %dms\n", timing.TCPConnectTime.Milliseconds()))
		buf.WriteString(fmt.Sprintf("    TLS Handshake:      %dms\n", timing.TLSHandshakeTime.Milliseconds()))
		buf.WriteString(fmt.Sprintf("    Time to First Byte: %dms\n", timing.TimeToFirstByte.Milliseconds()))
		buf.WriteString(fmt.Sprintf("    Total:              %dms\n", timing.TotalTime.Milliseconds()))

		buf.WriteString("  Headers:\n")
		for key, values := range resp.Headers() {
			for _, value := range values {
				buf.WriteString(fmt.Sprintf("    %s: %s\n",
					f.scheme.HeaderKey.Sprint(key),
					f.scheme.HeaderValue.Sprint(value)))
			}
		}
	}

	if body != "" {
		buf.WriteString("  Body:\n")
		buf.WriteString(indentBody(formatJSONString(body)))
	}

	return buf.String()
}

// formatJSONString pretty-prints body when it is JSON; anything else passes
// through unchanged.
func formatJSONString(body string) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(body), "", "  "); err != nil {
		return body
	}
	return pretty.String()
}

func indentBody(body string) string {
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n") + "\n"
}
