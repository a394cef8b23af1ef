package repo

import "fmt"

// CollectionNotFoundError reports a lookup for a collection name that
// is not in the store.
type CollectionNotFoundError struct {
	Name string
}

func (e *CollectionNotFoundError) Error() string {
	return fmt.Sprintf("collection not found: %s", e.Name)
}

// EndpointNotFoundError reports a lookup for an endpoint name that is
// not in its collection.
type EndpointNotFoundError struct {
	Name       string
	Collection string
}

func (e *EndpointNotFoundError) Error() string {
	if e.Collection != "" {
		return fmt.Sprintf("endpoint not found: %s in %s", e.Name, e.Collection)
	}
	return fmt.Sprintf("endpoint not found: %s", e.Name)
}

// DuplicateNameError reports an attempt to create a second collection
// with an existing name. Names are the store's primary key, so
// duplicates are rejected everywhere.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("collection already exists: %s", e.Name)
}
