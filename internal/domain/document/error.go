package document

import "errors"

var (
	ErrInvalidURI = errors.New("document uri is required")
	ErrCorrupt    = errors.New("stored document list is not valid JSON")
)
