package manifest

import "errors"

var (
	// ErrFileNotFound indicates the manifest file does not exist or cannot be read
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrInvalidFormat indicates the file contents are not valid YAML
	ErrInvalidFormat = errors.New("invalid manifest format")
)
