package matches

import (
	"time"

	"github.com/mirfanaieng/resume-tailor-ai/internal/pipeline"
)

// Job statuses. A job lands on degenerate when both sides parsed but the
// required skill set was empty or a side was too thin to parse meaningfully.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusDegenerate = "degenerate"
	StatusFailed     = "failed"
)

// Match represents a resume-to-job matching job.
type Match struct {
	ID               string
	ResumeDocumentID string
	JDDocumentID     string
	JDText           string
	Status           string
	Result           *pipeline.MatchResult
	ErrorMessage     string
	CreatedAt        time.Time
	CompletedAt      *time.Time
}
