// Package parse implements the document parsing core: text normalization,
// field extraction, section segmentation, and skill extraction, composed into
// a single parser per document type.
package parse

import (
	"context"
	"errors"
	"strings"

	"github.com/mirfanaieng/resume-tailor-ai/internal/keywords"
)

// DocType selects the recognized section-header set.
type DocType string

const (
	DocTypeResume DocType = "resume"
	DocTypeJob    DocType = "jd"
)

// minParseRunes is the threshold below which input is flagged degenerate.
const minParseRunes = 30

// ErrDegenerateInput marks text too short to parse meaningfully. The parser
// still returns its best-effort document alongside this error so batch
// pipelines can report and continue.
var ErrDegenerateInput = errors.New("input text too short to parse")

// ParsedDocument is the immutable typed record produced per document. Empty
// string fields mean "none found"; absence is never an error.
type ParsedDocument struct {
	Name     string     `json:"name,omitempty"`
	Email    string     `json:"email,omitempty"`
	Phone    string     `json:"phone,omitempty"`
	Sections SectionMap `json:"sections"`
	Skills   []string   `json:"skills"`
	DocType  DocType    `json:"docType"`
}

// Parser is the composition root for one document type. Construct once and
// reuse; it is safe for concurrent use.
type Parser struct {
	docType   DocType
	segmenter *Segmenter
	skills    *SkillExtractor
}

// NewParser builds a parser for the given document type. ranker is the
// optional keyword-ranking collaborator for the skill fallback; pass nil (or
// keywords.Disabled{}) to turn the fallback off.
func NewParser(docType DocType, ranker keywords.Ranker) *Parser {
	headers := ResumeSectionHeaders
	if docType == DocTypeJob {
		headers = JobSectionHeaders
	}
	return &Parser{
		docType:   docType,
		segmenter: NewSegmenter(headers),
		skills:    &SkillExtractor{Ranker: ranker},
	}
}

// Parse normalizes raw text and extracts the typed fields. fileName (optional)
// feeds the last-resort name heuristic. For degenerate input the best-effort
// document is returned together with ErrDegenerateInput.
func (p *Parser) Parse(ctx context.Context, raw, fileName string) (ParsedDocument, error) {
	text := Normalize(raw)

	doc := ParsedDocument{
		Name:     ExtractName(text, fileName),
		Email:    ExtractEmail(text),
		Phone:    ExtractPhone(text),
		Sections: p.segmenter.Segment(text),
		DocType:  p.docType,
	}
	doc.Skills = p.skills.Extract(ctx, p.skillsSpan(doc.Sections), text).Skills

	if len([]rune(text)) < minParseRunes {
		return doc, ErrDegenerateInput
	}
	return doc, nil
}

// Text returns the normalized form of raw input; exposed so callers can keep
// the normalized full text alongside the parsed record.
func (p *Parser) Text(raw string) string {
	return Normalize(raw)
}

// Section names feeding primary skill extraction, in priority order. Job
// descriptions spread requirements across several headings, so every span in
// the list contributes; résumés use the first non-empty one.
var (
	resumeSkillSections = []string{"skills", "technical skills"}
	jobSkillSections    = []string{"skills", "technical skills", "requirements", "must-haves", "nice-to-have"}
)

// skillsSpan assembles the span feeding primary skill extraction. An empty
// result is treated as "section absent".
func (p *Parser) skillsSpan(sections SectionMap) string {
	if p.docType == DocTypeJob {
		var spans []string
		for _, name := range jobSkillSections {
			if span, ok := sections.Get(name); ok && span != "" {
				spans = append(spans, span)
			}
		}
		return strings.Join(spans, "\n")
	}
	for _, name := range resumeSkillSections {
		if span, ok := sections.Get(name); ok && span != "" {
			return span
		}
	}
	return ""
}
