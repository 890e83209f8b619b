package util

import (
	"errors"
	"strings"
)

var errInvalidFileName = errors.New("invalid file name")

// SanitizeFileName flattens path separators and rejects traversal patterns
// so user-supplied names are safe to embed in storage keys.
func SanitizeFileName(name string) (string, error) {
	s := strings.TrimSpace(name)
	if s == "" || strings.Contains(s, "..") {
		return "", errInvalidFileName
	}
	s = strings.NewReplacer("/", "_", "\\", "_", "\x00", "").Replace(s)
	if s == "" {
		return "", errInvalidFileName
	}
	return s, nil
}
