package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/comandev/coman/packages/collection"
	"github.com/comandev/coman/packages/http"
)

// Renderer writes responses and request metadata to the terminal.
type Renderer struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type Option func(*Renderer)

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.noColor {
		color.NoColor = true
	}
	return r
}

func WithWriter(w io.Writer) Option {
	return func(r *Renderer) {
		r.writer = w
	}
}

func WithVerbose(v bool) Option {
	return func(r *Renderer) {
		r.verbose = v
	}
}

func WithNoColor(nc bool) Option {
	return func(r *Renderer) {
		r.noColor = nc
	}
}

func (r *Renderer) Verbose() bool { return r.verbose }

func statusColor(resp *http.Response) func(a ...any) string {
	switch resp.Severity() {
	case http.SeveritySuccess:
		return color.New(color.FgGreen).SprintFunc()
	case http.SeverityRedirect:
		return color.New(color.FgCyan).SprintFunc()
	case http.SeverityClient:
		return color.New(color.FgYellow).SprintFunc()
	default:
		return color.New(color.FgRed).SprintFunc()
	}
}

// StatusLine prints the one-line result summary:
// [METHOD] url - status (N ms).
func (r *Renderer) StatusLine(method string, resp *http.Response) {
	bold := color.New(color.Bold).SprintFunc()
	colorize := statusColor(resp)
	fmt.Fprintf(r.writer, "%s %s - %s (%d ms)\n",
		bold("["+method+"]"), resp.URL, colorize(resp.Status), resp.DurationMs())
}

// RequestHeaders prints the headers sent, for verbose mode.
func (r *Renderer) RequestHeaders(headers []collection.Header) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(r.writer, "%s\n", cyan("> request headers"))
	for _, h := range headers {
		fmt.Fprintf(r.writer, ">   %s: %s\n", h.Key, h.Value)
	}
}

// RequestBody prints the body sent, for verbose mode.
func (r *Renderer) RequestBody(body string) {
	if body == "" {
		return
	}
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(r.writer, "%s\n", cyan("> request body"))
	fmt.Fprintf(r.writer, ">   %s\n", body)
}

// ResponseHeaders prints the status line proto and the headers
// received, for verbose mode.
func (r *Renderer) ResponseHeaders(resp *http.Response) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(r.writer, "%s\n", cyan("< "+resp.Proto+" "+resp.Status))
	for _, h := range resp.Headers {
		fmt.Fprintf(r.writer, "<   %s: %s\n", h.Key, h.Value)
	}
}

// Body prints the response body, optionally narrowed by a selector.
// Without one, JSON bodies are pretty-printed and anything else is
// written raw.
func (r *Renderer) Body(body []byte, selector string) error {
	if len(body) == 0 {
		return nil
	}
	if selector != "" {
		return r.selected(body, selector)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		italic := color.New(color.Italic).SprintFunc()
		fmt.Fprintf(r.writer, "%s\n", italic(string(body)))
		return nil
	}
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(r.writer, "%s\n", green(pretty.String()))
	return nil
}

// Error prints err on its own line, in red.
func (r *Renderer) Error(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(r.writer, "%s %v\n", red("Error:"), err)
}
