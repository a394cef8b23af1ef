package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/comandev/coman/packages/collection"
	"github.com/comandev/coman/packages/history"
	"github.com/comandev/coman/packages/http"
	"github.com/comandev/coman/packages/output"
	"github.com/comandev/coman/packages/runner"
	"github.com/comandev/coman/packages/template"
)

var (
	reqHeadersFlag []string
	reqBodyFlag    string
	reqVerboseFlag bool
	reqStreamFlag  bool
	reqSelectFlag  string
	reqTimeoutFlag time.Duration
)

var reqCmd = &cobra.Command{
	Use:   "req",
	Short: "Execute an ad-hoc request",
	Long: `Send a request without storing it. The body may come from -b or be
piped through stdin; piped input wins. Text bodies with ":?" prompt for
the missing values; binary stdin is uploaded as a multipart file.

Examples:
  coman req get https://api.example.com/ping
  coman req post https://api.example.com/users -b '{"name":":?"}'
  cat photo.png | coman req post https://api.example.com/upload
  coman req get https://api.example.com/events -s`,
}

func init() {
	for _, method := range []collection.Method{collection.Get, collection.Post, collection.Put, collection.Delete, collection.Patch} {
		reqCmd.AddCommand(newReqMethodCmd(method))
	}
	reqCmd.PersistentFlags().StringArrayVarP(&reqHeadersFlag, "header", "H", nil, "Header as \"Key: Value\" (repeatable)")
	reqCmd.PersistentFlags().StringVarP(&reqBodyFlag, "body", "b", "", "Request body")
	reqCmd.PersistentFlags().BoolVarP(&reqVerboseFlag, "verbose", "v", false, "Print request and response headers")
	reqCmd.PersistentFlags().BoolVarP(&reqStreamFlag, "stream", "s", false, "Stream the response body to stdout as it arrives")
	reqCmd.PersistentFlags().StringVar(&reqSelectFlag, "select", "", "Narrow output: line numbers (e.g. 1,3-5) or a JSON key path")
	reqCmd.PersistentFlags().DurationVar(&reqTimeoutFlag, "timeout", 0, "Per-request timeout (e.g. 5s), 0 uses the client default")
}

func newReqMethodCmd(method collection.Method) *cobra.Command {
	lower := strings.ToLower(method.String())
	return &cobra.Command{
		Use:   lower + " <url>",
		Short: "Send a " + method.String() + " request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body *string
			if reqBodyFlag != "" {
				body = &reqBodyFlag
			}
			headers, err := parseHeaders(reqHeadersFlag)
			if err != nil {
				return err
			}
			return executeAndRender(cmd, method, args[0], headers, body)
		},
	}
}

// executeAndRender is the shared pipeline behind req and run: read
// stdin, execute with prompting, log to history, render.
func executeAndRender(cmd *cobra.Command, method collection.Method, url string, headers []collection.Header, body *string) error {
	stdin, err := readStdin()
	if err != nil {
		return err
	}

	r := renderer(output.WithVerbose(reqVerboseFlag))
	client := http.NewClient()

	opts := runner.Options{
		Stream:   reqStreamFlag,
		Stdin:    stdin,
		Prompter: template.NewTerminalPrompter(os.Stdin, os.Stderr),
		Sink:     cmd.OutOrStdout(),
		Timeout:  reqTimeoutFlag,
	}
	if reqVerboseFlag && !reqStreamFlag {
		opts.OnRequest = func(headers []collection.Header, body string) {
			r.RequestHeaders(headers)
			r.RequestBody(body)
		}
	}

	resp, err := runner.Execute(cmd.Context(), client, method, url, headers, body, opts)
	if err != nil {
		return err
	}

	recordHistory(method, resp)

	if reqStreamFlag {
		return nil
	}
	return renderResponse(r, method, resp)
}

func renderResponse(r *output.Renderer, method collection.Method, resp *http.Response) error {
	if r.Verbose() {
		r.ResponseHeaders(resp)
	}
	r.StatusLine(method.String(), resp)
	return r.Body(resp.Body, reqSelectFlag)
}

// recordHistory appends to the request log. Failures are reported but
// never fail the command.
func recordHistory(method collection.Method, resp *http.Response) {
	recorder, err := history.Open(history.DefaultPath(dataFilePath()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer recorder.Close()

	err = recorder.Record(context.Background(), history.Entry{
		Method:     method.String(),
		URL:        resp.URL,
		StatusCode: resp.StatusCode,
		Duration:   resp.Duration,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record history: %v\n", err)
	}
}
