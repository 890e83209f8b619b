// Package pipeline ties extraction, parsing, and matching into single calls
// used by the HTTP services and the CLI. Runs are batch-safe: one bad
// document degrades its own result and never aborts the run.
package pipeline

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/mirfanaieng/resume-tailor-ai/internal/extract"
	"github.com/mirfanaieng/resume-tailor-ai/internal/keywords"
	"github.com/mirfanaieng/resume-tailor-ai/internal/match"
	"github.com/mirfanaieng/resume-tailor-ai/internal/parse"
)

// Status classifies a per-document outcome.
type Status string

const (
	StatusOK         Status = "ok"
	StatusDegenerate Status = "degenerate"
	StatusNotFound   Status = "not-found"
)

// FileResult is the outcome of running one file through extract and parse.
// Doc is populated best-effort even for degenerate documents.
type FileResult struct {
	Path   string               `json:"path,omitempty"`
	Status Status               `json:"status"`
	Text   string               `json:"-"`
	Doc    parse.ParsedDocument `json:"document"`
}

// MatchResult bundles both parsed sides with their skill-match report.
type MatchResult struct {
	Resume FileResult   `json:"resume"`
	JD     FileResult   `json:"jd"`
	Report match.Report `json:"report"`
}

// Runner owns the collaborators shared by all pipeline runs.
type Runner struct {
	extractor    *extract.Extractor
	resumeParser *parse.Parser
	jdParser     *parse.Parser
	matcher      *match.Matcher
}

// NewRunner wires a Runner. The ranker may be keywords.Disabled; topN <= 0
// falls back to the parser default.
func NewRunner(extractor *extract.Extractor, ranker keywords.Ranker, topN int) *Runner {
	return &Runner{
		extractor:    extractor,
		resumeParser: parse.NewParser(parse.DocTypeResume, ranker),
		jdParser:     parse.NewParser(parse.DocTypeJob, ranker),
		matcher:      &match.Matcher{Ranker: ranker, TopN: topN},
	}
}

// File extracts and parses a single document from disk.
func (r *Runner) File(ctx context.Context, path string, docType parse.DocType) (FileResult, error) {
	if err := ctx.Err(); err != nil {
		return FileResult{}, err
	}

	text, err := r.extractor.Text(ctx, path)
	if err != nil {
		if errors.Is(err, extract.ErrNotFound) {
			return FileResult{Path: path, Status: StatusNotFound}, nil
		}
		return FileResult{}, err
	}

	parser := r.resumeParser
	if docType == parse.DocTypeJob {
		parser = r.jdParser
	}
	result, err := r.parseWith(ctx, parser, text, filepath.Base(path))
	if err != nil {
		return FileResult{}, err
	}
	result.Path = path
	return result, nil
}

// ParseText parses already-extracted text. Degenerate input is reported via
// Status, not an error.
func (r *Runner) ParseText(ctx context.Context, raw, fileName string) (FileResult, error) {
	return r.parseWith(ctx, r.resumeParser, raw, fileName)
}

// ParseJobText is ParseText with the job-description header set.
func (r *Runner) ParseJobText(ctx context.Context, raw, fileName string) (FileResult, error) {
	return r.parseWith(ctx, r.jdParser, raw, fileName)
}

func (r *Runner) parseWith(ctx context.Context, parser *parse.Parser, raw, fileName string) (FileResult, error) {
	doc, err := parser.Parse(ctx, raw, fileName)
	if err != nil && !errors.Is(err, parse.ErrDegenerateInput) {
		return FileResult{}, err
	}

	status := StatusOK
	if errors.Is(err, parse.ErrDegenerateInput) {
		status = StatusDegenerate
	}
	return FileResult{Status: status, Text: parser.Text(raw), Doc: doc}, nil
}

// Match runs both files through the pipeline and scores the overlap.
func (r *Runner) Match(ctx context.Context, resumePath, jdPath string) (MatchResult, error) {
	resume, err := r.File(ctx, resumePath, parse.DocTypeResume)
	if err != nil {
		return MatchResult{}, err
	}
	jd, err := r.File(ctx, jdPath, parse.DocTypeJob)
	if err != nil {
		return MatchResult{}, err
	}
	return r.Score(ctx, resume, jd), nil
}

// Score builds the match report from two already-parsed sides.
func (r *Runner) Score(ctx context.Context, resume, jd FileResult) MatchResult {
	report := r.matcher.Match(ctx, match.Input{
		ResumeSkills: resume.Doc.Skills,
		JDSkills:     jd.Doc.Skills,
		ResumeText:   resume.Text,
		JDText:       jd.Text,
	})
	return MatchResult{Resume: resume, JD: jd, Report: report}
}
