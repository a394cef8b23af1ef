package repo

import "github.com/comandev/coman/packages/collection"

// AddCollection upserts a collection. An existing collection keeps its
// endpoints: the URL is replaced and the headers merged. Never returns
// a not-found error.
func (m *Manager) AddCollection(name, url string, headers []collection.Header) error {
	return m.mutate(func(cols []collection.Collection) ([]collection.Collection, error) {
		if i := indexOf(cols, name); i >= 0 {
			cols[i].URL = url
			cols[i].Headers = collection.MergeHeaders(cols[i].Headers, headers)
			return cols, nil
		}
		return append(cols, collection.Collection{
			Name:    name,
			URL:     url,
			Headers: headers,
		}), nil
	})
}

// DeleteCollection removes a collection by name.
func (m *Manager) DeleteCollection(name string) error {
	return m.mutate(func(cols []collection.Collection) ([]collection.Collection, error) {
		i := indexOf(cols, name)
		if i < 0 {
			return nil, &CollectionNotFoundError{Name: name}
		}
		return append(cols[:i], cols[i+1:]...), nil
	})
}

// UpdateCollection replaces the URL when url is non-empty and merges
// headers when headers is non-nil. Omitted fields are left unchanged.
func (m *Manager) UpdateCollection(name, url string, headers []collection.Header) error {
	return m.mutate(func(cols []collection.Collection) ([]collection.Collection, error) {
		i := indexOf(cols, name)
		if i < 0 {
			return nil, &CollectionNotFoundError{Name: name}
		}
		if url != "" {
			cols[i].URL = url
		}
		if headers != nil {
			cols[i].Headers = collection.MergeHeaders(cols[i].Headers, headers)
		}
		return cols, nil
	})
}

// CopyCollection deep-clones a collection, endpoints included, under
// newName. The target name must not already exist.
func (m *Manager) CopyCollection(name, newName string) error {
	return m.mutate(func(cols []collection.Collection) ([]collection.Collection, error) {
		i := indexOf(cols, name)
		if i < 0 {
			return nil, &CollectionNotFoundError{Name: name}
		}
		if indexOf(cols, newName) >= 0 {
			return nil, &DuplicateNameError{Name: newName}
		}
		clone := cols[i].Clone()
		clone.Name = newName
		return append(cols, clone), nil
	})
}
