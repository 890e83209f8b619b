// Package match computes the skill-overlap report between a résumé and a job
// description. It is pure and deterministic given its inputs.
package match

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/mirfanaieng/resume-tailor-ai/internal/keywords"
)

// minSideSkills is the per-side threshold below which a skill set is augmented
// with fallback keyword extraction before matching.
const minSideSkills = 3

const noRequirementsNote = "no requirements were detected in the job description"

// Report is the outcome of matching résumé skills against job-description
// skills. Matched and missing are disjoint, lexicographically sorted, and
// together cover the required set.
type Report struct {
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	MatchScore    float64  `json:"match_score"`
	TotalRequired int      `json:"total_required"`
	Note          string   `json:"note,omitempty"`
}

// Input carries both sides of a match. The full texts are consulted only when
// a side's skill list is too small and the fallback ranker is available.
type Input struct {
	ResumeSkills []string
	JDSkills     []string
	ResumeText   string
	JDText       string
}

// Matcher scores skill overlap. Ranker is the optional keyword-ranking
// collaborator used for per-side augmentation; nil disables augmentation.
type Matcher struct {
	Ranker keywords.Ranker
	TopN   int
}

// Match normalizes both skill lists, augments under-populated sides
// independently (union, never replace), and returns the deterministic report.
// An empty required set is the defined degenerate case, not an error.
func (m *Matcher) Match(ctx context.Context, in Input) Report {
	resumeSet := foldSet(in.ResumeSkills)
	jdSet := foldSet(in.JDSkills)

	m.augment(ctx, resumeSet, in.ResumeText)
	m.augment(ctx, jdSet, in.JDText)

	if len(jdSet) == 0 {
		return Report{
			MatchedSkills: []string{},
			MissingSkills: []string{},
			MatchScore:    0.0,
			TotalRequired: 0,
			Note:          noRequirementsNote,
		}
	}

	matched := make([]string, 0, len(jdSet))
	missing := make([]string, 0, len(jdSet))
	for skill := range jdSet {
		if resumeSet[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	score := 100 * float64(len(matched)) / float64(len(jdSet))
	return Report{
		MatchedSkills: matched,
		MissingSkills: missing,
		MatchScore:    round1(score),
		TotalRequired: len(jdSet),
	}
}

// augment unions fallback keyphrases into a side's set when it holds fewer
// than minSideSkills entries and full text is available. Collaborator absence
// or failure leaves the set unchanged.
func (m *Matcher) augment(ctx context.Context, set map[string]bool, fullText string) {
	if len(set) >= minSideSkills || m.Ranker == nil || strings.TrimSpace(fullText) == "" {
		return
	}
	topN := m.TopN
	if topN <= 0 {
		topN = 15
	}
	phrases, err := m.Ranker.RankKeyphrases(ctx, fullText, 2, topN)
	if err != nil {
		return
	}
	for _, p := range phrases {
		if folded := strings.ToLower(strings.TrimSpace(p)); folded != "" {
			set[folded] = true
		}
	}
}

func foldSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		if folded := strings.ToLower(strings.TrimSpace(s)); folded != "" {
			set[folded] = true
		}
	}
	return set
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
