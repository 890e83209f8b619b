package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mirfanaieng/resume-tailor-ai/internal/extract"
	"github.com/mirfanaieng/resume-tailor-ai/internal/keywords"
	"github.com/mirfanaieng/resume-tailor-ai/internal/parse"
)

const fixtureResume = `Jane Doe
jane.doe@example.com
+44 20 1234567

Summary:
Backend engineer with eight years of production experience.

Skills:
Python, Docker, Kubernetes, PostgreSQL

Experience:
Built data plumbing for a large retailer.
`

const fixtureJD = `Backend Engineer

Responsibilities:
Own services end to end.

Requirements:
Python, Kubernetes, AWS, Terraform
`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

func newTestRunner() *Runner {
	return NewRunner(extract.New(), keywords.NewFrequencyRanker(), 0)
}

func TestFileParsesResume(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "jane_doe.txt", fixtureResume)

	got, err := newTestRunner().File(context.Background(), path, parse.DocTypeResume)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if got.Status != StatusOK {
		t.Fatalf("expected status ok, got %q", got.Status)
	}
	if got.Doc.Name != "Jane Doe" {
		t.Fatalf("expected name Jane Doe, got %q", got.Doc.Name)
	}
	if len(got.Doc.Skills) != 4 {
		t.Fatalf("expected 4 skills, got %v", got.Doc.Skills)
	}
}

func TestFileMissingIsNotFoundStatus(t *testing.T) {
	got, err := newTestRunner().File(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"), parse.DocTypeResume)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if got.Status != StatusNotFound {
		t.Fatalf("expected status not-found, got %q", got.Status)
	}
}

func TestFileShortInputIsDegenerateStatus(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "stub.txt", "123 456")

	got, err := newTestRunner().File(context.Background(), path, parse.DocTypeResume)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if got.Status != StatusDegenerate {
		t.Fatalf("expected status degenerate, got %q", got.Status)
	}
}

func TestMatchScoresBothSides(t *testing.T) {
	dir := t.TempDir()
	resumePath := writeFixture(t, dir, "jane_doe.txt", fixtureResume)
	jdPath := writeFixture(t, dir, "backend.txt", fixtureJD)

	got, err := newTestRunner().Match(context.Background(), resumePath, jdPath)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if got.Resume.Status != StatusOK || got.JD.Status != StatusOK {
		t.Fatalf("expected both sides ok, got %q/%q", got.Resume.Status, got.JD.Status)
	}
	if got.Report.TotalRequired != 4 {
		t.Fatalf("expected 4 required skills, got %d", got.Report.TotalRequired)
	}
	if got.Report.MatchScore != 50.0 {
		t.Fatalf("expected score 50.0, got %v", got.Report.MatchScore)
	}
}

func TestMatchRequirementsHeaderOnlyJD(t *testing.T) {
	dir := t.TempDir()
	resumePath := writeFixture(t, dir, "resume.txt", "Jane Doe\nSkills:\nPython, SQL, Docker")
	jdPath := writeFixture(t, dir, "jd.txt", "Requirements:\nPython, AWS, Docker, Kubernetes")

	got, err := newTestRunner().Match(context.Background(), resumePath, jdPath)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if got.Resume.Status != StatusOK || got.JD.Status != StatusOK {
		t.Fatalf("expected both sides ok, got %q/%q", got.Resume.Status, got.JD.Status)
	}
	if expected := []string{"docker", "python"}; !reflect.DeepEqual(got.Report.MatchedSkills, expected) {
		t.Fatalf("matched = %v, want %v", got.Report.MatchedSkills, expected)
	}
	if expected := []string{"aws", "kubernetes"}; !reflect.DeepEqual(got.Report.MissingSkills, expected) {
		t.Fatalf("missing = %v, want %v", got.Report.MissingSkills, expected)
	}
	if got.Report.TotalRequired != 4 {
		t.Fatalf("expected 4 required skills, got %d", got.Report.TotalRequired)
	}
	if got.Report.MatchScore != 50.0 {
		t.Fatalf("expected score 50.0, got %v", got.Report.MatchScore)
	}
}

func TestMatchOneSideMissingStillReturns(t *testing.T) {
	dir := t.TempDir()
	resumePath := writeFixture(t, dir, "jane_doe.txt", fixtureResume)

	got, err := newTestRunner().Match(context.Background(), resumePath, filepath.Join(dir, "missing_jd.txt"))
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if got.JD.Status != StatusNotFound {
		t.Fatalf("expected jd status not-found, got %q", got.JD.Status)
	}
	if got.Report.TotalRequired != 0 {
		t.Fatalf("expected degenerate report, got %+v", got.Report)
	}
}
