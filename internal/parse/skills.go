package parse

import (
	"context"
	"regexp"
	"strings"

	"github.com/mirfanaieng/resume-tailor-ai/internal/keywords"
)

const (
	// minSectionSkills is the distinct-token threshold below which the
	// section-based result is considered insufficient.
	minSectionSkills = 3

	// maxSkillWords rejects long prose fragments masquerading as skills.
	maxSkillWords = 6

	// DefaultFallbackTopN bounds the fallback keyword extraction.
	DefaultFallbackTopN = 15

	fallbackPhraseWords = 2
)

var skillSplitPattern = regexp.MustCompile(`[,;\n]|•|·|▪|\*`)

// SkillSource records which path produced a skill list.
type SkillSource string

const (
	SkillSourceSection  SkillSource = "section"
	SkillSourceFallback SkillSource = "fallback"
	SkillSourceNone     SkillSource = "none"
)

// SkillsResult is the typed outcome of skill extraction. Sufficient reports
// whether the section path alone met the threshold; when it did not, Skills
// holds the fallback output (replacement, not a merge).
type SkillsResult struct {
	Skills     []string
	Source     SkillSource
	Sufficient bool
}

// SkillExtractor derives a normalized skill list from a skills section span,
// with a keyword-ranking fallback over the full document text. The Ranker is
// an optional collaborator; when nil or failing, the fallback silently yields
// nothing.
type SkillExtractor struct {
	Ranker keywords.Ranker
	TopN   int
}

// Extract returns the skill list for a document. sectionText is the "skills"
// section span ("" when the section is absent); fullText is the whole
// normalized document used only by the fallback path.
func (e *SkillExtractor) Extract(ctx context.Context, sectionText, fullText string) SkillsResult {
	primary := SplitSkillTokens(sectionText)
	if len(primary) >= minSectionSkills {
		return SkillsResult{Skills: primary, Source: SkillSourceSection, Sufficient: true}
	}

	fallback := e.rankFallback(ctx, fullText)
	if len(fallback) == 0 {
		if len(primary) > 0 {
			return SkillsResult{Skills: primary, Source: SkillSourceSection, Sufficient: false}
		}
		return SkillsResult{Source: SkillSourceNone, Sufficient: false}
	}
	return SkillsResult{Skills: fallback, Source: SkillSourceFallback, Sufficient: false}
}

// rankFallback consults the ranking collaborator, treating absence or failure
// as "no enrichment" rather than an error.
func (e *SkillExtractor) rankFallback(ctx context.Context, fullText string) []string {
	if e.Ranker == nil || strings.TrimSpace(fullText) == "" {
		return nil
	}
	topN := e.TopN
	if topN <= 0 {
		topN = DefaultFallbackTopN
	}
	phrases, err := e.Ranker.RankKeyphrases(ctx, fullText, fallbackPhraseWords, topN)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(phrases))
	seen := make(map[string]bool, len(phrases))
	for _, p := range phrases {
		folded := strings.ToLower(strings.TrimSpace(p))
		if folded == "" || seen[folded] {
			continue
		}
		seen[folded] = true
		out = append(out, folded)
	}
	return out
}

// SplitSkillTokens splits a skills span on commas, semicolons, newlines, and
// bullet characters, dropping empties and over-long fragments, deduplicating
// case-insensitively while preserving first-seen casing and order.
func SplitSkillTokens(sectionText string) []string {
	if strings.TrimSpace(sectionText) == "" {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, raw := range skillSplitPattern.Split(sectionText, -1) {
		token := strings.Trim(raw, " \t-–")
		if token == "" {
			continue
		}
		if len(strings.Fields(token)) > maxSkillWords {
			continue
		}
		folded := strings.ToLower(token)
		if seen[folded] {
			continue
		}
		seen[folded] = true
		out = append(out, token)
	}
	return out
}
