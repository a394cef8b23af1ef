// Package repo implements the collection/endpoint repository: CRUD and
// copy operations over the stored collection list. Every mutation is a
// whole-store read-modify-write cycle against the backing store.
package repo

import (
	"sync"

	"github.com/comandev/coman/packages/collection"
	"github.com/comandev/coman/packages/store"
)

// Manager owns all access to the persisted collection list. Mutations
// are serialized behind a mutex so the manager is safe to embed in a
// long-running process; the CLI itself only ever runs one operation.
type Manager struct {
	mu    sync.Mutex
	store *store.Store
}

func New(st *store.Store) *Manager {
	return &Manager{store: st}
}

// Path returns the location of the backing store file.
func (m *Manager) Path() string { return m.store.Path() }

// Collections loads the full store.
func (m *Manager) Collections() ([]collection.Collection, error) {
	return m.store.Load()
}

// Collection loads one collection by name.
func (m *Manager) Collection(name string) (*collection.Collection, error) {
	cols, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	i := indexOf(cols, name)
	if i < 0 {
		return nil, &CollectionNotFoundError{Name: name}
	}
	return &cols[i], nil
}

// Endpoint loads one endpoint by collection and endpoint name.
func (m *Manager) Endpoint(col, name string) (*collection.Endpoint, error) {
	c, err := m.Collection(col)
	if err != nil {
		return nil, err
	}
	ep := c.Endpoint(name)
	if ep == nil {
		return nil, &EndpointNotFoundError{Name: name, Collection: col}
	}
	return ep, nil
}

// mutate runs one load-mutate-save cycle. The callback returns the new
// collection list to persist; returning an error aborts without saving,
// leaving the store unchanged on disk.
func (m *Manager) mutate(fn func(cols []collection.Collection) ([]collection.Collection, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cols, err := m.store.Load()
	if err != nil {
		return err
	}
	cols, err = fn(cols)
	if err != nil {
		return err
	}
	return m.store.Save(cols)
}

func indexOf(cols []collection.Collection, name string) int {
	for i := range cols {
		if cols[i].Name == name {
			return i
		}
	}
	return -1
}
