package http

import (
	"strings"
	"time"

	"github.com/comandev/coman/packages/collection"
)

// Severity buckets a status code for display purposes.
type Severity int

const (
	SeveritySuccess  Severity = iota // 2xx
	SeverityRedirect                 // 3xx
	SeverityClient                   // 4xx
	SeverityServer                   // 5xx and anything else
)

// Response is the buffered result of a request. Headers are sorted by
// key so output is stable across runs.
type Response struct {
	StatusCode int
	Status     string
	Proto      string
	Headers    []collection.Header
	Body       []byte
	Duration   time.Duration
	URL        string
}

// Header returns the first value matching key, case-insensitive.
func (r *Response) Header(key string) string {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Key, key) {
			return h.Value
		}
	}
	return ""
}

func (r *Response) BodyString() string { return string(r.Body) }

func (r *Response) DurationMs() int64 { return r.Duration.Milliseconds() }

// Success reports whether the status code is in the 2xx range.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) Severity() Severity {
	switch {
	case r.StatusCode < 300:
		return SeveritySuccess
	case r.StatusCode < 400:
		return SeverityRedirect
	case r.StatusCode < 500:
		return SeverityClient
	default:
		return SeverityServer
	}
}
