package tailored

import "time"

// Tailored records one tailoring run over a finished match: the rewritten
// summary, the merged skills list, and the generated DOCX location.
type Tailored struct {
	ID               string
	MatchID          string
	Provider         string
	Model            string
	Summary          string
	Skills           []string
	ApprovedKeywords []string
	DocxKey          string
	CreatedAt        time.Time
}
