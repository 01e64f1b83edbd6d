package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpx "github.com/ravindragullapalli/http-request/http"
	"github.com/ravindragullapalli/http-request/internal/output"
)

// addRequestFlags registers the flags shared by every per-verb command.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("header", "H", []string{}, "HTTP header \"Name: value\" (can be used multiple times)")
	cmd.Flags().StringArrayP("query", "q", []string{}, "Query parameter name=value (can be used multiple times)")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().Bool("no-redirect", false, "Do not follow redirects")
}

// buildTarget assembles a web target from flag values: "Name: value" header
// strings, "name=value" query strings, and the redirect toggle.
func buildTarget(hr *httpx.HttpRequest, url string, headers, query []string, noRedirect bool) (*httpx.WebTarget, error) {
	target, err := hr.Target(url)
	if err != nil {
		return nil, err
	}

	for _, header := range headers {
		name, value, ok := strings.Cut(header, ":")
		if !ok {
			return nil, fmt.Errorf("header %q must use \"Name: value\" form", header)
		}
		target.AddHeader(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	for _, q := range query {
		name, value, _ := strings.Cut(q, "=")
		target.AddParameter(name, value)
	}
	if noRedirect {
		target.SetRequestConfig(httpx.RequestConfig{DisableRedirects: true})
	}
	if err := target.Err(); err != nil {
		return nil, err
	}
	return target, nil
}

// runRequest builds a target from command flags, dispatches it, and prints
// the formatted exchange.
func runRequest(cmd *cobra.Command, method httpx.HttpMethod, url, body string) {
	headers, _ := cmd.Flags().GetStringArray("header")
	query, _ := cmd.Flags().GetStringArray("query")
	verbose, _ := cmd.Flags().GetBool("verbose")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	noColor, _ := cmd.Flags().GetBool("no-color")
	noRedirect, _ := cmd.Flags().GetBool("no-redirect")

	if !noColor {
		noColor = !output.IsTerminal(os.Stdout)
	}

	hr := httpx.New(httpx.WithTimeout(timeout))

	target, err := buildTarget(hr, url, headers, query, noRedirect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	formatter := output.NewFormatter(verbose, noColor)
	fmt.Print(formatter.FormatRequest(method, target))

	var resp *httpx.Response
	if body != "" {
		resp, err = target.RequestString(method, body)
	} else {
		resp, err = target.Request(method)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bodyStr, err := resp.BodyAsString()
	if err != nil && !errors.Is(err, httpx.ErrNoContent) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(formatter.FormatResponse(resp, bodyStr))
}
