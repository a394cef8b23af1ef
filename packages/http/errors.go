package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// ErrorKind classifies request failures so the CLI can map them to
// exit codes without string matching.
type ErrorKind int

const (
	KindResponse ErrorKind = iota
	KindTimeout
	KindConnection
	KindRedirect
	KindRequestBuild
	KindUnknownContentType
)

func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindConnection:
		return "connection"
	case KindRedirect:
		return "redirect"
	case KindRequestBuild:
		return "request"
	case KindUnknownContentType:
		return "content-type"
	default:
		return "response"
	}
}

// Error wraps a transport failure with the method and URL that caused
// it.
type Error struct {
	Kind   ErrorKind
	Method string
	URL    string
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %s error", e.Method, e.URL, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// wrapError classifies err into an Error. Timeouts and cancelled
// contexts become KindTimeout, dial failures KindConnection, broken
// redirect chains KindRedirect, everything else KindResponse.
func wrapError(method, rawURL string, err error) *Error {
	kind := KindResponse
	var urlErr *url.Error
	var opErr *net.OpError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = KindTimeout
	case errors.As(err, &urlErr) && urlErr.Timeout():
		kind = KindTimeout
	case errors.Is(err, errTooManyRedirects):
		kind = KindRedirect
	case errors.As(err, &opErr):
		kind = KindConnection
	}
	return &Error{Kind: kind, Method: method, URL: rawURL, Err: err}
}
