package repo

import "github.com/comandev/coman/packages/collection"

// ResolvedRequest is the fully computed request derived from a
// collection and endpoint pair: full URL, method, merged headers and
// body, ready for the execution engine.
type ResolvedRequest struct {
	URL     string
	Method  collection.Method
	Headers []collection.Header
	Body    *string
}

// ResolveEndpoint composes the full URL (collection URL + endpoint
// path, concatenated verbatim), the merged headers and the body for
// one endpoint. It is the sole entry point the templating and
// execution layers need.
func (m *Manager) ResolveEndpoint(col, name string) (*ResolvedRequest, error) {
	c, err := m.Collection(col)
	if err != nil {
		return nil, err
	}
	ep := c.Endpoint(name)
	if ep == nil {
		return nil, &EndpointNotFoundError{Name: name, Collection: col}
	}

	resolved := &ResolvedRequest{
		URL:     c.URL + ep.Path,
		Method:  ep.Method,
		Headers: collection.MergeHeaders(c.Headers, ep.Headers),
	}
	if ep.Body != nil {
		body := *ep.Body
		resolved.Body = &body
	}
	return resolved, nil
}
