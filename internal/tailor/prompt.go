package tailor

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed prompts/tailor_v1.txt
var promptV1 string

const maxPromptSkills = 25

// BuildPrompt renders the tailoring prompt for the given input.
func BuildPrompt(input Input) string {
	name := strings.TrimSpace(input.CandidateName)
	if name == "" {
		name = "Candidate"
	}
	role := strings.TrimSpace(input.TargetRole)
	if role == "" {
		role = "Professional"
	}

	skills := make([]string, 0, len(input.CurrentSkills))
	for _, s := range input.CurrentSkills {
		if trimmed := strings.ToLower(strings.TrimSpace(s)); trimmed != "" {
			skills = append(skills, trimmed)
		}
		if len(skills) == maxPromptSkills {
			break
		}
	}
	keywords := make([]string, 0, len(input.ApprovedKeywords))
	for _, k := range input.ApprovedKeywords {
		if trimmed := strings.ToLower(strings.TrimSpace(k)); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	keywordList := strings.Join(keywords, ", ")
	if keywordList == "" {
		keywordList = "None"
	}

	r := strings.NewReplacer(
		"{{CANDIDATE}}", name,
		"{{TARGET_ROLE}}", role,
		"{{CURRENT_SKILLS}}", strings.Join(skills, ", "),
		"{{APPROVED_KEYWORDS}}", keywordList,
	)
	return r.Replace(promptV1)
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSONObject pulls the outermost JSON object out of a model response,
// tolerating prose or code fences around it. Returns "" when none is present.
func ExtractJSONObject(raw string) string {
	return jsonObjectPattern.FindString(raw)
}
