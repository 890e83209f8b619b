// Package tailor rewrites a resume's professional summary and skills list
// against a target role. Providers only ever add approved keywords; existing
// skills are never removed and no company name appears in the summary.
package tailor

import (
	"context"
	"errors"
	"strings"
)

// Input captures what a provider needs to rewrite summary and skills.
type Input struct {
	CandidateName    string
	TargetRole       string
	CurrentSkills    []string
	ApprovedKeywords []string
}

// Result is the provider's rewrite plus the locally enforced skills merge.
type Result struct {
	Summary       string   `json:"summary"`
	SkillsToAdd   []string `json:"skills_to_add"`
	FinalSkills   []string `json:"final_skills_list"`
	Justification string   `json:"justification"`
	AddedCount    int      `json:"added_skills_count"`
}

// Client abstracts LLM providers for resume tailoring.
type Client interface {
	Tailor(ctx context.Context, input Input) (Result, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("tailoring provider not configured")

// Placeholder is used when no provider API key is set.
type Placeholder struct{}

// Tailor returns ErrNotConfigured.
func (Placeholder) Tailor(ctx context.Context, input Input) (Result, error) {
	_ = ctx
	_ = input
	return Result{}, ErrNotConfigured
}

// MergeSkills enforces the add-only policy on a provider response: the final
// list is the original skills plus the proposed additions that were actually
// approved, Title Cased and deduplicated in order of first appearance.
func MergeSkills(original, proposed, approved []string) []string {
	approvedSet := make(map[string]struct{}, len(approved))
	for _, k := range approved {
		if trimmed := strings.ToLower(strings.TrimSpace(k)); trimmed != "" {
			approvedSet[trimmed] = struct{}{}
		}
	}

	var final []string
	seen := make(map[string]struct{})
	add := func(s string) {
		titled := titleCase(strings.TrimSpace(s))
		if titled == "" {
			return
		}
		key := strings.ToLower(titled)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		final = append(final, titled)
	}

	for _, s := range original {
		add(s)
	}
	for _, s := range proposed {
		if _, ok := approvedSet[strings.ToLower(strings.TrimSpace(s))]; ok {
			add(s)
		}
	}
	return final
}

// titleCase uppercases the first letter of each space-separated word. It does
// not lowercase the rest, so acronyms like AWS survive.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 && r[0] >= 'a' && r[0] <= 'z' {
			r[0] = r[0] - 'a' + 'A'
			words[i] = string(r)
		}
	}
	return strings.Join(words, " ")
}
