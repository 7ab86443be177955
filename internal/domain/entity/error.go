package entity

import "errors"

var (
	ErrInvalidName = errors.New("entity name is required")
	ErrInvalidKind = errors.New("entity kind must be person, pet or household")
	ErrNotFound    = errors.New("entity not found")
	ErrCorrupt     = errors.New("stored entity list is not valid JSON")
)
