package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpx "github.com/ravindragullapalli/http-request/http"
	"github.com/ravindragullapalli/http-request/internal/config"
	"github.com/ravindragullapalli/http-request/internal/output"
	"github.com/ravindragullapalli/http-request/metrics"
	"github.com/ravindragullapalli/http-request/pkg/jsonpath"
	"github.com/ravindragullapalli/http-request/pkg/jsonschema"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Dispatch a YAML-defined request suite",
	Long: `Run loads a suite file, dispatches each request against the suite's
base URL, and reports per-request status, extracted values, schema
validation results, and a latency summary.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		noColor, _ := cmd.Flags().GetBool("no-color")
		if !noColor {
			noColor = !output.IsTerminal(os.Stdout)
		}

		suite, err := config.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		failures := runSuite(suite, output.NewFormatter(verbose, noColor), noColor)
		if failures > 0 {
			os.Exit(1)
		}
	},
}

func runSuite(suite *config.Suite, formatter *output.Formatter, noColor bool) int {
	recorder := metrics.NewRecorder()

	options := []httpx.ClientOption{
		httpx.WithTimeout(suite.ParsedTimeout(30 * time.Second)),
		httpx.WithRecorder(recorder),
	}
	for name, value := range suite.Headers {
		options = append(options, httpx.WithBaseHeader(name, value))
	}
	hr := httpx.New(options...)

	failures := 0
	for _, req := range suite.Requests {
		if err := runSuiteRequest(hr, req, suite.BaseURL, formatter); err != nil {
			fmt.Printf("%s %s: %v\n", output.ErrorIcon(noColor), req.Name, err)
			failures++
			continue
		}
		fmt.Printf("%s %s\n", output.SuccessIcon(noColor), req.Name)
	}

	printSummary(recorder.Snapshot(), failures)
	return failures
}

func runSuiteRequest(hr *httpx.HttpRequest, req config.Request, baseURL string, formatter *output.Formatter) error {
	target, err := hr.Target(baseURL)
	if err != nil {
		return err
	}
	if req.Path != "" {
		target.Path(req.Path)
	}
	for name, value := range req.Headers {
		target.AddHeader(name, value)
	}
	target.AddParameterMap(req.Query)
	if err := target.Err(); err != nil {
		return err
	}

	method := httpx.HttpMethod(strings.ToUpper(req.Method))
	if formatter.Verbose {
		fmt.Print(formatter.FormatRequest(method, target))
	}

	var resp *httpx.Response
	if req.Body != "" {
		resp, err = target.RequestString(method, req.Body)
	} else {
		resp, err = target.Request(method)
	}
	if err != nil {
		return err
	}

	body, err := resp.BodyAsString()
	if err != nil && !errors.Is(err, httpx.ErrNoContent) {
		return err
	}
	if formatter.Verbose {
		fmt.Print(formatter.FormatResponse(resp, body))
	}

	if req.ExpectStatus != 0 && resp.StatusCode() != req.ExpectStatus {
		return fmt.Errorf("expected status %d, got %d", req.ExpectStatus, resp.StatusCode())
	}

	if len(req.Extract) > 0 {
		values, err := jsonpath.ExtractAll(body, req.Extract)
		if err != nil {
			return err
		}
		for name, value := range values {
			fmt.Printf("  %s = %s\n", name, value)
		}
	}

	if req.Schema != "" {
		valid, errs := jsonschema.ValidateWithErrors(body, req.Schema)
		if !valid {
			details := make([]string, 0, len(errs))
			for _, e := range errs {
				details = append(details, e.Error())
			}
			return fmt.Errorf("schema validation failed: %s", strings.Join(details, "; "))
		}
	}

	return nil
}

func printSummary(snap metrics.Snapshot, failures int) {
	if snap.Count == 0 {
		return
	}
	fmt.Printf("\n%d requests, %d failed\n", snap.Count, failures)
	fmt.Printf("latency min/mean/max = %v / %v / %v\n", snap.Min, snap.Mean, snap.Max)
	fmt.Printf("p50/p90/p99 = %v / %v / %v\n", snap.P50, snap.P90, snap.P99)
}

func init() {
	runCmd.Flags().BoolP("verbose", "v", false, "Print each request and response")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
}
