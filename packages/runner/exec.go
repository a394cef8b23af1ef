// Package runner drives request execution: it applies stdin and
// placeholder templating to a resolved request, dispatches it through
// the right client mode, and runs whole-collection test batches.
package runner

import (
	"context"
	"io"
	"time"

	"github.com/comandev/coman/packages/collection"
	"github.com/comandev/coman/packages/http"
	"github.com/comandev/coman/packages/template"
)

// Options configures a single execution.
type Options struct {
	// Stream skips templating and copies the response body to Sink as
	// it arrives.
	Stream bool
	// Stdin, when non-empty, replaces the stored body. Text stdin
	// still goes through placeholder filling; binary stdin is sent as
	// a multipart upload.
	Stdin []byte
	// Prompter answers `:?` placeholders. Required unless Stream is
	// set or the request carries no placeholders.
	Prompter template.Prompter
	// Sink receives streamed body chunks. Only used with Stream.
	Sink io.Writer
	// OnRequest, when set, observes the final headers and body after
	// templating, just before the request is sent. Not called when
	// streaming.
	OnRequest func(headers []collection.Header, body string)
	// Timeout, when positive, bounds this request instead of the
	// client default.
	Timeout time.Duration
}

// Execute templates and sends one request. Precedence for the body:
// stdin beats the stored body; streaming beats templating.
func Execute(ctx context.Context, client *http.Client, method collection.Method, url string, headers []collection.Header, body *string, opts Options) (*http.Response, error) {
	req := &http.Request{
		Method:  method,
		URL:     url,
		Headers: headers,
		Timeout: opts.Timeout,
	}
	if body != nil {
		req.Body = *body
	}

	if opts.Stream {
		if len(opts.Stdin) > 0 {
			req.BodyBytes = opts.Stdin
		}
		return client.DoStream(ctx, req, opts.Sink)
	}

	url, err := template.FillBody(url, opts.Prompter)
	if err != nil {
		return nil, err
	}
	req.URL = url

	filledHeaders, err := template.FillHeaders(headers, opts.Prompter)
	if err != nil {
		return nil, err
	}
	req.Headers = filledHeaders

	if len(opts.Stdin) > 0 {
		if !template.IsText(opts.Stdin) {
			if opts.OnRequest != nil {
				opts.OnRequest(req.Headers, "")
			}
			return client.DoMultipart(ctx, req, opts.Stdin)
		}
		req.Body, err = template.FillBody(string(opts.Stdin), opts.Prompter)
		if err != nil {
			return nil, err
		}
	} else if req.Body != "" {
		req.Body, err = template.FillBody(req.Body, opts.Prompter)
		if err != nil {
			return nil, err
		}
	}

	if opts.OnRequest != nil {
		opts.OnRequest(req.Headers, req.Body)
	}
	return client.Do(ctx, req)
}
