package http

import (
	"time"

	"github.com/comandev/coman/packages/collection"
)

// Request is a fully resolved request ready to send. Body carries a
// text payload; BodyBytes, when non-nil, takes precedence and carries a
// raw (possibly binary) payload.
type Request struct {
	Method    collection.Method
	URL       string
	Headers   []collection.Header
	Body      string
	BodyBytes []byte
	Timeout   time.Duration
}

func (r *Request) payload() []byte {
	if r.BodyBytes != nil {
		return r.BodyBytes
	}
	if r.Body != "" {
		return []byte(r.Body)
	}
	return nil
}
