package tailored_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/mirfanaieng/resume-tailor-ai/internal/match"
	"github.com/mirfanaieng/resume-tailor-ai/internal/matches"
	"github.com/mirfanaieng/resume-tailor-ai/internal/parse"
	"github.com/mirfanaieng/resume-tailor-ai/internal/pipeline"
	"github.com/mirfanaieng/resume-tailor-ai/internal/render"
	localstore "github.com/mirfanaieng/resume-tailor-ai/internal/shared/storage/object/local"
	"github.com/mirfanaieng/resume-tailor-ai/internal/tailor"
	"github.com/mirfanaieng/resume-tailor-ai/internal/tailored"
)

type stubClient struct {
	result tailor.Result
	err    error
	gotIn  tailor.Input
}

func (s *stubClient) Tailor(ctx context.Context, input tailor.Input) (tailor.Result, error) {
	s.gotIn = input
	if s.err != nil {
		return tailor.Result{}, s.err
	}
	out := s.result
	out.FinalSkills = tailor.MergeSkills(input.CurrentSkills, out.SkillsToAdd, input.ApprovedKeywords)
	return out, nil
}

func seedCompletedMatch(t *testing.T, repo matches.Repo) string {
	t.Helper()
	m := matches.Match{
		ID:               "match-1",
		ResumeDocumentID: "doc-1",
		Status:           matches.StatusQueued,
		CreatedAt:        time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), m); err != nil {
		t.Fatalf("seed match: %v", err)
	}
	result := &pipeline.MatchResult{
		Resume: pipeline.FileResult{
			Status: pipeline.StatusOK,
			Doc: parse.ParsedDocument{
				Name:   "Jane Doe",
				Skills: []string{"Python", "Docker"},
			},
		},
		JD: pipeline.FileResult{Status: pipeline.StatusOK},
		Report: match.Report{
			MatchedSkills: []string{"python"},
			MissingSkills: []string{"kubernetes"},
			MatchScore:    50.0,
			TotalRequired: 2,
		},
	}
	completedAt := time.Now().UTC()
	if err := repo.UpdateStatus(context.Background(), m.ID, matches.StatusCompleted, result, "", &completedAt); err != nil {
		t.Fatalf("complete match: %v", err)
	}
	return m.ID
}

func newService(t *testing.T, client tailor.Client) (*tailored.Service, matches.Repo) {
	t.Helper()
	matchRepo := matches.NewMemoryRepo()
	return &tailored.Service{
		Repo:     tailored.NewMemoryRepo(),
		Matches:  matchRepo,
		Client:   client,
		Store:    localstore.New(t.TempDir()),
		Render:   render.NewDocxBuilder(),
		Provider: "groq",
		Model:    "llama-3.3-70b-versatile",
	}, matchRepo
}

func TestCreateTailorsAndStoresDocx(t *testing.T) {
	client := &stubClient{
		result: tailor.Result{
			Summary:     "Confident backend engineer targeting senior roles.",
			SkillsToAdd: []string{"Kubernetes"},
		},
	}
	svc, matchRepo := newService(t, client)
	matchID := seedCompletedMatch(t, matchRepo)

	got, err := svc.Create(context.Background(), matchID, []string{" Kubernetes ", "kubernetes"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if client.gotIn.CandidateName != "Jane Doe" {
		t.Fatalf("expected candidate from match result, got %q", client.gotIn.CandidateName)
	}
	if len(got.Skills) != 3 {
		t.Fatalf("expected merged skills, got %v", got.Skills)
	}
	if got.DocxKey == "" {
		t.Fatal("expected a stored docx key")
	}

	rc, name, err := svc.Download(context.Background(), got.ID)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	defer rc.Close()
	if !strings.HasSuffix(name, ".docx") {
		t.Fatalf("expected .docx file name, got %q", name)
	}
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read docx: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty docx")
	}
}

func TestCreateRejectsUnfinishedMatch(t *testing.T) {
	svc, matchRepo := newService(t, &stubClient{})
	m := matches.Match{ID: "match-queued", ResumeDocumentID: "doc-1", Status: matches.StatusQueued, CreatedAt: time.Now().UTC()}
	if err := matchRepo.Create(context.Background(), m); err != nil {
		t.Fatalf("seed match: %v", err)
	}

	_, err := svc.Create(context.Background(), m.ID, nil)
	if !errors.Is(err, tailored.ErrMatchNotReady) {
		t.Fatalf("expected ErrMatchNotReady, got %v", err)
	}
}

func TestCreateUnknownMatchIsNotFound(t *testing.T) {
	svc, _ := newService(t, &stubClient{})

	_, err := svc.Create(context.Background(), "missing", nil)
	if !errors.Is(err, tailored.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateWithoutProviderSurfacesNotConfigured(t *testing.T) {
	svc, matchRepo := newService(t, tailor.Placeholder{})
	matchID := seedCompletedMatch(t, matchRepo)

	_, err := svc.Create(context.Background(), matchID, nil)
	if !errors.Is(err, tailor.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
