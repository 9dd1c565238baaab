package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads manifest files from disk.
type Loader struct{}

// NewLoader creates a manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a YAML manifest file.
//
// A missing or unreadable file returns an error wrapping ErrFileNotFound.
// Content that is not a YAML mapping returns an error wrapping
// ErrInvalidFormat.
func (l *Loader) Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}

	var root map[string]interface{}
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}

	return &Document{root: root, path: path}, nil
}
