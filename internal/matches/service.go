package matches

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mirfanaieng/resume-tailor-ai/internal/documents"
	"github.com/mirfanaieng/resume-tailor-ai/internal/pipeline"
	"github.com/mirfanaieng/resume-tailor-ai/internal/shared/metrics"
	"github.com/mirfanaieng/resume-tailor-ai/internal/shared/telemetry"
)

// Service contains business logic for match jobs.
type Service struct {
	Repo   Repo
	Docs   *documents.Service
	Runner *pipeline.Runner
}

// Create validates the request, records a queued job, and kicks off
// processing in the background.
func (s *Service) Create(ctx context.Context, resumeDocumentID, jdDocumentID, jdText string) (Match, error) {
	resumeDocumentID = strings.TrimSpace(resumeDocumentID)
	jdDocumentID = strings.TrimSpace(jdDocumentID)
	jdText = strings.TrimSpace(jdText)

	if resumeDocumentID == "" {
		return Match{}, fmt.Errorf("%w: resumeDocumentId is required", ErrInvalidInput)
	}
	if jdDocumentID == "" && jdText == "" {
		return Match{}, fmt.Errorf("%w: jdDocumentId or jobDescription is required", ErrInvalidInput)
	}

	if _, err := s.Docs.Get(ctx, resumeDocumentID); err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return Match{}, fmt.Errorf("%w: resume document %s", ErrNotFound, resumeDocumentID)
		}
		return Match{}, err
	}
	if jdDocumentID != "" {
		if _, err := s.Docs.Get(ctx, jdDocumentID); err != nil {
			if errors.Is(err, documents.ErrNotFound) {
				return Match{}, fmt.Errorf("%w: jd document %s", ErrNotFound, jdDocumentID)
			}
			return Match{}, err
		}
	}

	m := Match{
		ID:               uuid.NewString(),
		ResumeDocumentID: resumeDocumentID,
		JDDocumentID:     jdDocumentID,
		JDText:           jdText,
		Status:           StatusQueued,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return Match{}, err
	}

	go s.completeAsync(context.Background(), m.ID)
	return m, nil
}

// Get returns a match by ID.
func (s *Service) Get(ctx context.Context, id string) (Match, error) {
	if strings.TrimSpace(id) == "" {
		return Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns matches, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Match, error) {
	return s.Repo.List(ctx, limit, offset)
}

func (s *Service) completeAsync(ctx context.Context, matchID string) {
	defer func() {
		if r := recover(); r != nil {
			s.fail(matchID, fmt.Errorf("panic: %v", r))
		}
	}()

	startedAt := time.Now().UTC()
	if err := s.Repo.UpdateStatus(ctx, matchID, StatusProcessing, nil, "", nil); err != nil {
		s.fail(matchID, fmt.Errorf("set processing: %w", err))
		return
	}
	metrics.IncMatchStarted()
	telemetry.Info("match.status", map[string]any{
		"matchId":           matchID,
		"status":            StatusProcessing,
		"status_transition": "queued->processing",
	})

	m, err := s.Repo.GetByID(ctx, matchID)
	if err != nil {
		s.fail(matchID, fmt.Errorf("match lookup: %w", err))
		return
	}

	resume, err := s.parseSide(ctx, m.ResumeDocumentID, "", false)
	if err != nil {
		s.fail(matchID, fmt.Errorf("resume side: %w", err))
		return
	}
	jd, err := s.parseSide(ctx, m.JDDocumentID, m.JDText, true)
	if err != nil {
		s.fail(matchID, fmt.Errorf("jd side: %w", err))
		return
	}

	result := s.Runner.Score(ctx, resume, jd)

	status := StatusCompleted
	if resume.Status != pipeline.StatusOK || jd.Status != pipeline.StatusOK || result.Report.TotalRequired == 0 {
		status = StatusDegenerate
	}

	completedAt := time.Now().UTC()
	if err := s.Repo.UpdateStatus(ctx, matchID, status, &result, "", &completedAt); err != nil {
		s.fail(matchID, fmt.Errorf("store result: %w", err))
		return
	}
	if status == StatusDegenerate {
		metrics.IncMatchDegenerate()
	} else {
		metrics.IncMatchCompleted()
	}
	metrics.ObserveMatchDurationMs(durationMs(startedAt, completedAt))
	telemetry.Info("match.status", map[string]any{
		"matchId":           matchID,
		"status":            status,
		"status_transition": "processing->" + status,
		"matchScore":        result.Report.MatchScore,
		"duration_ms":       durationMs(startedAt, completedAt),
	})
}

// parseSide loads one side's text (stored document or inline) and parses it.
func (s *Service) parseSide(ctx context.Context, documentID, inlineText string, isJob bool) (pipeline.FileResult, error) {
	fileName := "inline.txt"
	text := inlineText
	if documentID != "" {
		doc, err := s.Docs.Get(ctx, documentID)
		if err != nil {
			return pipeline.FileResult{}, fmt.Errorf("document lookup id=%s: %w", documentID, err)
		}
		fileName = doc.FileName
		text, err = s.Docs.Text(ctx, doc)
		if err != nil {
			return pipeline.FileResult{}, fmt.Errorf("document text id=%s: %w", documentID, err)
		}
	}

	if isJob {
		return s.Runner.ParseJobText(ctx, text, fileName)
	}
	return s.Runner.ParseText(ctx, text, fileName)
}

func (s *Service) fail(matchID string, cause error) {
	completedAt := time.Now().UTC()
	if err := s.Repo.UpdateStatus(context.Background(), matchID, StatusFailed, nil, cause.Error(), &completedAt); err != nil {
		telemetry.Error("match.fail_update", map[string]any{
			"matchId": matchID,
			"error":   err.Error(),
		})
	}
	metrics.IncMatchFailed()
	telemetry.Error("match.status", map[string]any{
		"matchId": matchID,
		"status":  StatusFailed,
		"error":   cause.Error(),
	})
}

func durationMs(startedAt, completedAt time.Time) float64 {
	return float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0
}
