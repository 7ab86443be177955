package docindex

import "errors"

var (
	// ErrNotFound means no index has been persisted yet.
	ErrNotFound = errors.New("document index not found")
	// ErrCorrupt means the persisted index could not be decoded.
	ErrCorrupt = errors.New("document index is corrupt")
)
