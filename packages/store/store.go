// Package store persists the collection list as a JSON file with
// atomic writes: serialize to a temp file in the same directory, fsync,
// then rename over the target. A crash mid-write leaves the previous
// version intact.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/comandev/coman/packages/collection"
	"github.com/google/uuid"
)

// StorageError wraps an I/O or decode failure on the collections file.
// A missing file is not a StorageError; Load treats it as an empty
// store.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store reads and writes the full collection list at a fixed path.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads from and writes to.
func (s *Store) Path() string { return s.path }

// Load reads the whole collection list. A missing file yields an empty
// list; any other failure is a StorageError.
func (s *Store) Load() ([]collection.Collection, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}

	var cols []collection.Collection
	if err := json.Unmarshal(data, &cols); err != nil {
		return nil, &StorageError{Op: "decode", Path: s.path, Err: err}
	}
	return cols, nil
}

// Save atomically replaces the collections file. The temp file lives in
// the same directory so the final rename stays on one filesystem.
func (s *Store) Save(cols []collection.Collection) error {
	data, err := json.MarshalIndent(cols, "", "  ")
	if err != nil {
		return &StorageError{Op: "encode", Path: s.path, Err: err}
	}

	dir := filepath.Dir(s.path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(s.path), uuid.NewString()))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return &StorageError{Op: "sync", Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return &StorageError{Op: "close", Path: s.path, Err: err}
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return &StorageError{Op: "rename", Path: s.path, Err: err}
	}
	return nil
}
