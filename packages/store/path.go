package store

import (
	"os"
	"path/filepath"
	"sync"
)

const (
	// DefaultFileName is the store file created under the home directory
	// when no override is set.
	DefaultFileName = "coman.json"

	// EnvPath names the environment variable that overrides the store
	// file location with an explicit path.
	EnvPath = "COMAN_JSON"
)

var resolveDefaultPath = sync.OnceValue(func() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, DefaultFileName)
})

// DefaultPath resolves the store location: the COMAN_JSON override if
// set, otherwise coman.json under the user's home directory. The
// result is computed once and cached for the process lifetime.
func DefaultPath() string {
	return resolveDefaultPath()
}
