package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/comandev/coman/packages/collection"
)

// DefaultTimeout bounds buffered (non-streaming) requests.
const DefaultTimeout = 120 * time.Second

// DefaultMaxRedirects caps the redirect chain in follow mode.
const DefaultMaxRedirects = 10

var errTooManyRedirects = fmt.Errorf("stopped after %d redirects", DefaultMaxRedirects)

// Client sends resolved requests. Redirects are not followed unless
// WithFollowRedirects(true) is set; the redirect response itself is
// returned instead.
type Client struct {
	httpClient     *http.Client
	streamClient   *http.Client
	timeout        time.Duration
	followRedirect bool
	defaultHeaders []collection.Header
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		timeout:        DefaultTimeout,
		followRedirect: false,
	}
	for _, opt := range opts {
		opt(c)
	}

	redirectPolicy := func(req *http.Request, via []*http.Request) error {
		if !c.followRedirect {
			return http.ErrUseLastResponse
		}
		if len(via) >= DefaultMaxRedirects {
			return errTooManyRedirects
		}
		return nil
	}

	c.httpClient = &http.Client{
		Timeout:       c.timeout,
		CheckRedirect: redirectPolicy,
	}
	// No client-level timeout when streaming: the response may be
	// unbounded. Cancellation comes from the context.
	c.streamClient = &http.Client{
		CheckRedirect: redirectPolicy,
	}

	return c
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

func WithFollowRedirects(follow bool) ClientOption {
	return func(c *Client) { c.followRedirect = follow }
}

func WithDefaultHeaders(headers []collection.Header) ClientOption {
	return func(c *Client) {
		c.defaultHeaders = append(c.defaultHeaders, headers...)
	}
}

// Do sends a request and buffers the whole response body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.build(ctx, req, bytes.NewReader(req.payload()), "")
	if err != nil {
		return nil, err
	}

	client := c.httpClient
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
		httpReq = httpReq.WithContext(ctx)
	}

	start := time.Now()
	httpResp, err := client.Do(httpReq)
	if err != nil {
		return nil, wrapError(req.Method.String(), req.URL, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, wrapError(req.Method.String(), req.URL, err)
	}

	return newResponse(httpResp, body, time.Since(start), req.URL), nil
}

// DoStream sends a request without a response deadline and copies the
// body to sink as it arrives. The returned response carries header
// metadata and an empty body.
func (c *Client) DoStream(ctx context.Context, req *Request, sink io.Writer) (*Response, error) {
	httpReq, err := c.build(ctx, req, bytes.NewReader(req.payload()), "")
	if err != nil {
		return nil, err
	}

	start := time.Now()
	httpResp, err := c.streamClient.Do(httpReq)
	if err != nil {
		return nil, wrapError(req.Method.String(), req.URL, err)
	}
	defer httpResp.Body.Close()

	if _, err := io.Copy(sink, httpResp.Body); err != nil {
		return nil, wrapError(req.Method.String(), req.URL, err)
	}

	return newResponse(httpResp, nil, time.Since(start), req.URL), nil
}

// DoMultipart wraps data in a multipart form with a single file part.
// The part's file name extension comes from sniffing the payload's
// magic bytes; unrecognizable payloads are rejected.
func (c *Client) DoMultipart(ctx context.Context, req *Request, data []byte) (*Response, error) {
	mtype := mimetype.Detect(data)
	if mtype.Is("application/octet-stream") {
		return nil, &Error{
			Kind:   KindUnknownContentType,
			Method: req.Method.String(),
			URL:    req.URL,
		}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "file"+mtype.Extension())
	if err != nil {
		return nil, &Error{Kind: KindRequestBuild, Method: req.Method.String(), URL: req.URL, Err: err}
	}
	if _, err := part.Write(data); err != nil {
		return nil, &Error{Kind: KindRequestBuild, Method: req.Method.String(), URL: req.URL, Err: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &Error{Kind: KindRequestBuild, Method: req.Method.String(), URL: req.URL, Err: err}
	}

	httpReq, err := c.build(ctx, req, &buf, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, wrapError(req.Method.String(), req.URL, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, wrapError(req.Method.String(), req.URL, err)
	}

	return newResponse(httpResp, body, time.Since(start), req.URL), nil
}

func (c *Client) build(ctx context.Context, req *Request, body io.Reader, contentType string) (*http.Request, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method.String(), req.URL, body)
	if err != nil {
		return nil, &Error{Kind: KindRequestBuild, Method: req.Method.String(), URL: req.URL, Err: err}
	}
	for _, h := range c.defaultHeaders {
		httpReq.Header.Set(h.Key, h.Value)
	}
	for _, h := range req.Headers {
		httpReq.Header.Set(h.Key, h.Value)
	}
	// Multipart boundary wins over any user-provided Content-Type.
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	return httpReq, nil
}

func newResponse(httpResp *http.Response, body []byte, duration time.Duration, url string) *Response {
	keys := make([]string, 0, len(httpResp.Header))
	for k := range httpResp.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	headers := make([]collection.Header, 0, len(keys))
	for _, k := range keys {
		for _, v := range httpResp.Header[k] {
			headers = append(headers, collection.Header{Key: k, Value: v})
		}
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Proto:      httpResp.Proto,
		Headers:    headers,
		Body:       body,
		Duration:   duration,
		URL:        url,
	}
}
