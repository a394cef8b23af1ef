package collection

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Header is an ordered key/value pair. It is encoded as a 2-element
// array rather than an object so that insertion order and duplicate
// keys survive a round trip until a merge collapses them.
type Header struct {
	Key   string
	Value string
}

func (h Header) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{h.Key, h.Value})
}

func (h *Header) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("header must be a [key, value] pair, got %d elements", len(pair))
	}
	h.Key, h.Value = pair[0], pair[1]
	return nil
}

func (h Header) MarshalYAML() (interface{}, error) {
	return []string{h.Key, h.Value}, nil
}

func (h *Header) UnmarshalYAML(value *yaml.Node) error {
	var pair []string
	if err := value.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("header must be a [key, value] pair, got %d elements", len(pair))
	}
	h.Key, h.Value = pair[0], pair[1]
	return nil
}

// Endpoint is a named, storable HTTP request template within a
// collection. Path is appended verbatim to the collection URL.
// A nil Body means "no body"; a pointer to the empty string is the
// distinct "explicitly cleared" state.
type Endpoint struct {
	Name    string   `json:"name" yaml:"name"`
	Path    string   `json:"endpoint" yaml:"endpoint"`
	Method  Method   `json:"method" yaml:"method"`
	Headers []Header `json:"headers" yaml:"headers"`
	Body    *string  `json:"body" yaml:"body"`
}

// Clone returns a deep copy of the endpoint.
func (e Endpoint) Clone() Endpoint {
	out := e
	out.Headers = append([]Header(nil), e.Headers...)
	if e.Body != nil {
		body := *e.Body
		out.Body = &body
	}
	return out
}

// Collection is a named group of endpoints sharing a base URL and
// default headers. Endpoints is nil when the collection has none.
type Collection struct {
	Name      string     `json:"name" yaml:"name"`
	URL       string     `json:"url" yaml:"url"`
	Headers   []Header   `json:"headers" yaml:"headers"`
	Endpoints []Endpoint `json:"requests" yaml:"requests"`
}

// Endpoint returns the endpoint with the given name, or nil.
func (c *Collection) Endpoint(name string) *Endpoint {
	for i := range c.Endpoints {
		if c.Endpoints[i].Name == name {
			return &c.Endpoints[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the collection, endpoints included.
func (c Collection) Clone() Collection {
	out := c
	out.Headers = append([]Header(nil), c.Headers...)
	if c.Endpoints != nil {
		out.Endpoints = make([]Endpoint, len(c.Endpoints))
		for i, e := range c.Endpoints {
			out.Endpoints[i] = e.Clone()
		}
	}
	return out
}
