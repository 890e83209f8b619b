package matches

import (
	"time"

	"github.com/mirfanaieng/resume-tailor-ai/internal/pipeline"
)

// MatchResponse is the outward-facing representation of a match job.
type MatchResponse struct {
	MatchID          string                `json:"matchId"`
	ResumeDocumentID string                `json:"resumeDocumentId"`
	JDDocumentID     string                `json:"jdDocumentId,omitempty"`
	Status           string                `json:"status"`
	Result           *pipeline.MatchResult `json:"result,omitempty"`
	Error            string                `json:"error,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
	CompletedAt      *time.Time            `json:"completedAt,omitempty"`
}

func toResponse(m Match) MatchResponse {
	return MatchResponse{
		MatchID:          m.ID,
		ResumeDocumentID: m.ResumeDocumentID,
		JDDocumentID:     m.JDDocumentID,
		Status:           m.Status,
		Result:           m.Result,
		Error:            m.ErrorMessage,
		CreatedAt:        m.CreatedAt,
		CompletedAt:      m.CompletedAt,
	}
}
