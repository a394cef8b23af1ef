package cmd

import (
	"errors"

	"github.com/comandev/coman/packages/http"
	"github.com/comandev/coman/packages/repo"
	"github.com/comandev/coman/packages/store"
)

// Exit codes for the coman CLI
const (
	// ExitSuccess indicates the command completed
	ExitSuccess = 0

	// ExitError indicates a general failure
	ExitError = 1

	// ExitNotFound indicates a missing collection or endpoint
	ExitNotFound = 2

	// ExitStorageError indicates a data file read or write failure
	ExitStorageError = 3

	// ExitNetworkError indicates a request transport failure
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

func exitCodeFor(err error) int {
	var colErr *repo.CollectionNotFoundError
	var epErr *repo.EndpointNotFoundError
	var storageErr *store.StorageError
	var httpErr *http.Error
	switch {
	case errors.As(err, &colErr), errors.As(err, &epErr):
		return ExitNotFound
	case errors.As(err, &storageErr):
		return ExitStorageError
	case errors.As(err, &httpErr):
		return ExitNetworkError
	default:
		return ExitError
	}
}
