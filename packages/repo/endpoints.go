package repo

import "github.com/comandev/coman/packages/collection"

// upsertEndpoint replaces an endpoint with the same name in place, or
// appends it.
func upsertEndpoint(c *collection.Collection, ep collection.Endpoint) {
	for i := range c.Endpoints {
		if c.Endpoints[i].Name == ep.Name {
			c.Endpoints[i] = ep
			return
		}
	}
	c.Endpoints = append(c.Endpoints, ep)
}

// AddEndpoint upserts an endpoint in a collection: an existing endpoint
// with the same name is replaced, not duplicated. A nil body means no
// body.
func (m *Manager) AddEndpoint(col, name, path string, method collection.Method, headers []collection.Header, body *string) error {
	return m.mutate(func(cols []collection.Collection) ([]collection.Collection, error) {
		i := indexOf(cols, col)
		if i < 0 {
			return nil, &CollectionNotFoundError{Name: col}
		}
		upsertEndpoint(&cols[i], collection.Endpoint{
			Name:    name,
			Path:    path,
			Method:  method,
			Headers: headers,
			Body:    body,
		})
		return cols, nil
	})
}

// DeleteEndpoint removes an endpoint from a collection.
func (m *Manager) DeleteEndpoint(col, name string) error {
	return m.mutate(func(cols []collection.Collection) ([]collection.Collection, error) {
		i := indexOf(cols, col)
		if i < 0 {
			return nil, &CollectionNotFoundError{Name: col}
		}
		eps := cols[i].Endpoints
		for j := range eps {
			if eps[j].Name == name {
				cols[i].Endpoints = append(eps[:j], eps[j+1:]...)
				if len(cols[i].Endpoints) == 0 {
					cols[i].Endpoints = nil
				}
				return cols, nil
			}
		}
		return nil, &EndpointNotFoundError{Name: name, Collection: col}
	})
}

// UpdateEndpoint applies partial changes to an endpoint. An empty path
// and nil headers are left unchanged; headers otherwise merge. Body
// semantics: nil = unchanged, pointer to "" = cleared, anything else
// replaces.
func (m *Manager) UpdateEndpoint(col, name, path string, headers []collection.Header, body *string) error {
	return m.mutate(func(cols []collection.Collection) ([]collection.Collection, error) {
		i := indexOf(cols, col)
		if i < 0 {
			return nil, &CollectionNotFoundError{Name: col}
		}
		ep := cols[i].Endpoint(name)
		if ep == nil {
			return nil, &EndpointNotFoundError{Name: name, Collection: col}
		}
		if path != "" {
			ep.Path = path
		}
		if headers != nil {
			ep.Headers = collection.MergeHeaders(ep.Headers, headers)
		}
		if body != nil {
			if *body == "" {
				ep.Body = nil
			} else {
				b := *body
				ep.Body = &b
			}
		}
		return cols, nil
	})
}

// CopyEndpoint clones an endpoint. With toCollection set, the clone
// keeps its original name and lands in the target collection; otherwise
// it is stored under newName in the same collection. Either way the
// clone upserts, replacing any endpoint already holding that name.
func (m *Manager) CopyEndpoint(col, name, newName, toCollection string) error {
	return m.mutate(func(cols []collection.Collection) ([]collection.Collection, error) {
		i := indexOf(cols, col)
		if i < 0 {
			return nil, &CollectionNotFoundError{Name: col}
		}
		src := cols[i].Endpoint(name)
		if src == nil {
			return nil, &EndpointNotFoundError{Name: name, Collection: col}
		}
		clone := src.Clone()

		target := i
		if toCollection != "" {
			target = indexOf(cols, toCollection)
			if target < 0 {
				return nil, &CollectionNotFoundError{Name: toCollection}
			}
		} else {
			clone.Name = newName
		}
		upsertEndpoint(&cols[target], clone)
		return cols, nil
	})
}

// EndpointHeaders returns the collection headers merged with the
// endpoint headers; the endpoint wins on conflicting keys.
func (m *Manager) EndpointHeaders(col, name string) ([]collection.Header, error) {
	c, err := m.Collection(col)
	if err != nil {
		return nil, err
	}
	ep := c.Endpoint(name)
	if ep == nil {
		return nil, &EndpointNotFoundError{Name: name, Collection: col}
	}
	return collection.MergeHeaders(c.Headers, ep.Headers), nil
}
