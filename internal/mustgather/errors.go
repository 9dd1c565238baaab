package mustgather

import "errors"

var (
	// ErrRootNotFound indicates no directory satisfying the archive root
	// layout could be located under the input path
	ErrRootNotFound = errors.New("must-gather root not found")

	// ErrInputUnreadable indicates the input path itself does not exist,
	// is not a directory, or cannot be listed
	ErrInputUnreadable = errors.New("input path unreadable")
)
