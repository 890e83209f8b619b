package parse

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Permissive by design: optional country code, optional parenthesized area
	// code, space/hyphen separators, 6-8 trailing digits. Recall over
	// precision; callers tolerate the occasional numeric-ID false positive.
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[- ]?)?\(?\d{2,4}\)?[- ]?\d{6,8}`)

	nameLinePattern = regexp.MustCompile(`^[A-Za-z \.\-']+$`)
	nameJunkPattern = regexp.MustCompile(`\d{3,}|\b(cv|resume|curriculum)\b`)

	fileNameLeadJunk  = regexp.MustCompile(`(?i)^(cv|resume|cv_|-|_)+`)
	fileNameTrailJunk = regexp.MustCompile(`(?i)( +resume| +cv).*`)
)

// nameSkipKeywords disqualify a line from being treated as a person's name:
// contact markers, job-title words, and document-type words.
var nameSkipKeywords = []string{
	"email", "phone", "@", "linkedin", "github", "www", "http",
	"engineer", "developer", "manager", "specialist", "lead", "senior",
	"dashboard", "company", "department", "project", "experience",
	"summary", "profile", "objective", "resume", "curriculum", "vitae",
}

// ExtractEmail returns the first email address in document order, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone-shaped substring in document order, or "".
func ExtractPhone(text string) string {
	return phonePattern.FindString(text)
}

// ExtractName runs the layered name heuristic over the top of the document,
// falling back to the supplied file name when no line qualifies. Returns ""
// when nothing plausible is found.
func ExtractName(text string, fileName string) string {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return nameFromFileName(fileName)
	}

	top := lines
	if len(top) > 10 {
		top = top[:10]
	}

	// Pass 1: keyword-filtered lines, strong casing signal preferred.
	var filtered []string
	for _, line := range top {
		lowered := strings.ToLower(line)
		if containsAny(lowered, nameSkipKeywords) {
			continue
		}
		if nameJunkPattern.MatchString(lowered) {
			continue
		}
		filtered = append(filtered, line)
	}
	if name := firstNameLine(filtered, true); name != "" {
		return name
	}
	if name := firstNameLine(filtered, false); name != "" {
		return name
	}

	// Pass 2: drop the keyword filter but keep the casing requirement.
	if name := firstNameLine(top, true); name != "" {
		return name
	}

	// Pass 3: first 5 lines, any casing.
	head := lines
	if len(head) > 5 {
		head = head[:5]
	}
	if name := firstNameLine(head, false); name != "" {
		return name
	}

	return nameFromFileName(fileName)
}

// firstNameLine returns the first line of 2-4 tokens composed only of
// letters, spaces, periods, hyphens, and apostrophes. When cased is set, the
// line must also be Title-Case or ALL-CAPS.
func firstNameLine(lines []string, cased bool) string {
	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if !nameLinePattern.MatchString(line) {
			continue
		}
		if cased && !isTitleCase(line) && !isAllCaps(line) {
			continue
		}
		return strings.TrimSpace(line)
	}
	return ""
}

// isTitleCase reports whether every word starts with an uppercase letter and
// contains no uppercase letters after the first. Initials like "A." count.
func isTitleCase(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		runes := []rune(w)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			return false
		}
		for _, r := range runes[1:] {
			if r >= 'A' && r <= 'Z' {
				return false
			}
		}
	}
	return true
}

func isAllCaps(line string) bool {
	hasLetter := false
	for _, r := range line {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

func containsAny(lowered string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lowered, k) {
			return true
		}
	}
	return false
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// nameFromFileName derives a display name from a file name: extension gone,
// leading cv/resume tokens gone, trailing "resume"/"cv" suffix and anything
// after it gone.
func nameFromFileName(fileName string) string {
	if fileName == "" {
		return ""
	}
	base := filepath.Base(fileName)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = fileNameLeadJunk.ReplaceAllString(stem, "")
	stem = fileNameTrailJunk.ReplaceAllString(stem, "")
	return strings.TrimSpace(stem)
}
