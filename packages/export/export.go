// Package export reads and writes collection dumps in JSON and YAML.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comandev/coman/packages/collection"
)

// Format names a dump encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml", case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unsupported format: %s (expected json or yaml)", s)
}

// FormatForPath guesses the format from a file extension, defaulting
// to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Write dumps cols to path in the given format.
func Write(path string, format Format, cols []collection.Collection) error {
	var data []byte
	var err error
	switch format {
	case YAML:
		data, err = yaml.Marshal(cols)
	default:
		data, err = json.MarshalIndent(cols, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a dump from path, detecting the format from the
// extension.
func Read(path string) ([]collection.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cols []collection.Collection
	switch FormatForPath(path) {
	case YAML:
		err = yaml.Unmarshal(data, &cols)
	default:
		err = json.Unmarshal(data, &cols)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cols, nil
}
