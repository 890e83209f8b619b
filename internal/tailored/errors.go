package tailored

import "errors"

var (
	// ErrNotFound indicates the requested tailored output does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates the request failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMatchNotReady indicates the referenced match has not finished
	// processing or has no stored result to tailor against.
	ErrMatchNotReady = errors.New("match not ready")
)
