package parse

import (
	"regexp"
	"strings"
)

var (
	spaceRuns = regexp.MustCompile(`[ \t]+`)
	blankRuns = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans raw extracted text into the canonical form the rest of the
// pipeline operates on: no carriage returns, no trailing whitespace per line,
// runs of spaces/tabs collapsed to a single space, and blank-line runs capped
// at one (paragraph breaks survive as exactly one empty line).
//
// Normalize is idempotent; empty input yields empty output.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	text := strings.ReplaceAll(raw, "\r", "")
	text = spaceRuns.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	text = strings.Join(lines, "\n")

	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
