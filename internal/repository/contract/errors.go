package contract

import "errors"

var (
	// ErrReferenceNotFound is returned when a row points at a parent that does not exist.
	ErrReferenceNotFound = errors.New("referenced record not found")
	ErrDuplicate         = errors.New("duplicate record")
)
