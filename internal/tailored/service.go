package tailored

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mirfanaieng/resume-tailor-ai/internal/matches"
	"github.com/mirfanaieng/resume-tailor-ai/internal/render"
	"github.com/mirfanaieng/resume-tailor-ai/internal/shared/storage/object"
	"github.com/mirfanaieng/resume-tailor-ai/internal/tailor"
)

// Service contains business logic for tailored outputs.
type Service struct {
	Repo     Repo
	Matches  matches.Repo
	Client   tailor.Client
	Store    object.ObjectStore
	Render   *render.DocxBuilder
	Provider string
	Model    string
}

// Create runs the tailoring provider over a finished match and renders the
// resulting summary and skills into a stored DOCX.
func (s *Service) Create(ctx context.Context, matchID string, approvedKeywords []string) (Tailored, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return Tailored{}, fmt.Errorf("%w: matchId is required", ErrInvalidInput)
	}

	m, err := s.Matches.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, matches.ErrNotFound) {
			return Tailored{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
		}
		return Tailored{}, err
	}
	if m.Result == nil || (m.Status != matches.StatusCompleted && m.Status != matches.StatusDegenerate) {
		return Tailored{}, fmt.Errorf("%w: match %s is %s", ErrMatchNotReady, matchID, m.Status)
	}

	approved := normalizeKeywords(approvedKeywords)
	input := tailor.Input{
		CandidateName:    m.Result.Resume.Doc.Name,
		CurrentSkills:    m.Result.Resume.Doc.Skills,
		ApprovedKeywords: approved,
	}

	result, err := s.Client.Tailor(ctx, input)
	if err != nil {
		return Tailored{}, err
	}

	t := Tailored{
		ID:               uuid.NewString(),
		MatchID:          matchID,
		Provider:         s.Provider,
		Model:            s.Model,
		Summary:          result.Summary,
		Skills:           result.FinalSkills,
		ApprovedKeywords: approved,
		CreatedAt:        time.Now().UTC(),
	}

	docxBytes, err := s.Render.Build(render.Input{
		Name:    m.Result.Resume.Doc.Name,
		Summary: result.Summary,
		Skills:  result.FinalSkills,
	})
	if err == nil {
		key := "tailored/" + t.ID + ".docx"
		if _, saveErr := s.Store.SaveWithKey(ctx, key, docxMimeType, bytes.NewReader(docxBytes)); saveErr == nil {
			t.DocxKey = key
		}
	}

	if err := s.Repo.Create(ctx, t); err != nil {
		return Tailored{}, err
	}
	return t, nil
}

// Get returns a tailored output by ID.
func (s *Service) Get(ctx context.Context, id string) (Tailored, error) {
	if strings.TrimSpace(id) == "" {
		return Tailored{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

const docxMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Download opens the generated DOCX for a tailored output.
func (s *Service) Download(ctx context.Context, id string) (io.ReadCloser, string, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if t.DocxKey == "" {
		return nil, "", fmt.Errorf("%w: no document was generated for %s", ErrNotFound, id)
	}
	rc, err := s.Store.Open(ctx, t.DocxKey)
	if err != nil {
		return nil, "", err
	}
	return rc, "tailored_" + t.ID + ".docx", nil
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		trimmed := strings.ToLower(strings.TrimSpace(k))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
