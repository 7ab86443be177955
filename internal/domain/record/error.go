package record

import (
	"errors"
)

var (
	ErrInvalidEntity = errors.New("entity id is required")
	ErrInvalidType   = errors.New("record type is required")
	ErrCorrupt       = errors.New("stored record list is not valid JSON")
)
