package parse

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

// ResumeSectionHeaders is the recognized header set for résumés, in the order
// they conventionally appear.
var ResumeSectionHeaders = []string{
	"summary", "about me", "objective",
	"skills", "technical skills",
	"experience", "work experience",
	"employment history",
	"projects", "project experience",
	"education", "academics",
	"certifications",
	"achievements",
}

// JobSectionHeaders is the recognized header set for job descriptions.
var JobSectionHeaders = []string{
	"responsibilities", "requirements", "must-haves", "nice-to-have",
	"skills", "technical skills",
	"work environment", "company overview", "summary",
}

// SectionMap is an ordered mapping from recognized header name (lowercase) to
// its content span. Spans are non-overlapping and contiguous: each runs from
// just after its header line to just before the next recognized header.
type SectionMap struct {
	names []string
	spans map[string]string
}

// Get returns the span for a header name (case-insensitive), if present.
func (m SectionMap) Get(name string) (string, bool) {
	if m.spans == nil {
		return "", false
	}
	span, ok := m.spans[strings.ToLower(name)]
	return span, ok
}

// Names returns the header names in document order of their last occurrence.
func (m SectionMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Len returns the number of sections found.
func (m SectionMap) Len() int { return len(m.names) }

// MarshalJSON renders the map as a JSON object in document order.
func (m SectionMap) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.spans[name])
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// UnmarshalJSON restores the map; ordering follows Go's map iteration after a
// sort, which is acceptable for persisted records.
func (m *SectionMap) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = SectionMap{spans: raw}
	for name := range raw {
		m.names = append(m.names, name)
	}
	sort.Strings(m.names)
	return nil
}

func (m *SectionMap) set(name, span string) {
	if m.spans == nil {
		m.spans = make(map[string]string)
	}
	if _, exists := m.spans[name]; exists {
		// Last-write-wins: drop the earlier position so order reflects the
		// surviving occurrence.
		for i, n := range m.names {
			if n == name {
				m.names = append(m.names[:i], m.names[i+1:]...)
				break
			}
		}
	}
	m.spans[name] = span
	m.names = append(m.names, name)
}

// Segmenter locates recognized section headers and slices a normalized
// document into contiguous spans. Construct once per document type and reuse.
type Segmenter struct {
	headerRe *regexp.Regexp
}

// NewSegmenter compiles a segmenter for an ordered header-label set. A header
// matches only as a full line, optionally followed by a colon or dash.
func NewSegmenter(headers []string) *Segmenter {
	quoted := make([]string, 0, len(headers))
	for _, h := range headers {
		h = strings.TrimSpace(strings.ToLower(h))
		if h != "" {
			quoted = append(quoted, regexp.QuoteMeta(h))
		}
	}
	pattern := `(?mi)^(` + strings.Join(quoted, "|") + `)[ \t]*[:\-]?[ \t]*$`
	return &Segmenter{headerRe: regexp.MustCompile(pattern)}
}

// Segment scans text for header lines and returns the resulting SectionMap.
// Duplicate headers resolve last-write-wins; a header with no following text
// yields an empty span.
func (s *Segmenter) Segment(text string) SectionMap {
	var out SectionMap
	matches := s.headerRe.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		name := strings.ToLower(text[m[2]:m[3]])

		start := m[1]
		if start < len(text) && text[start] == '\n' {
			start++
		}
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		out.set(name, strings.TrimSpace(text[start:end]))
	}
	return out
}
