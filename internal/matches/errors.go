package matches

import "errors"

var (
	// ErrNotFound indicates the requested match does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates the request failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
