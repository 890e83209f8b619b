package matches

import (
	"context"
	"time"

	"github.com/mirfanaieng/resume-tailor-ai/internal/pipeline"
)

// Repo defines persistence operations for match jobs.
type Repo interface {
	Create(ctx context.Context, m Match) error
	GetByID(ctx context.Context, id string) (Match, error)
	List(ctx context.Context, limit, offset int) ([]Match, error)
	UpdateStatus(ctx context.Context, id, status string, result *pipeline.MatchResult, errorMessage string, completedAt *time.Time) error
}
