package collection

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Method is the closed set of HTTP methods an endpoint may use.
type Method int

const (
	Get Method = iota
	Post
	Put
	Delete
	Patch
)

// wire form, as stored in the collections file
var methodNames = [...]string{"Get", "Post", "Put", "Delete", "Patch"}

// InvalidMethodError reports an unrecognized HTTP method token. It is
// returned before any I/O happens.
type InvalidMethodError struct {
	Token string
}

func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("invalid method: %s", e.Token)
}

// ParseMethod parses a method token case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(s) {
	case "GET":
		return Get, nil
	case "POST":
		return Post, nil
	case "PUT":
		return Put, nil
	case "DELETE":
		return Delete, nil
	case "PATCH":
		return Patch, nil
	}
	return 0, &InvalidMethodError{Token: s}
}

// String returns the canonical uppercase form, e.g. "GET".
func (m Method) String() string {
	return strings.ToUpper(m.wireName())
}

func (m Method) wireName() string {
	if m < 0 || int(m) >= len(methodNames) {
		return "Get"
	}
	return methodNames[m]
}

func (m Method) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.wireName())
}

func (m *Method) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMethod(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Method) MarshalYAML() (interface{}, error) {
	return m.wireName(), nil
}

func (m *Method) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseMethod(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
