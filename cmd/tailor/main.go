package main

// Match a resume against a job description from the command line, optionally
// tailoring the summary and skills when an LLM provider is configured:
//
//   go run ./cmd/tailor -resume resume.pdf -jd posting.txt -k "computer vision" -o output

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mirfanaieng/resume-tailor-ai/internal/extract"
	"github.com/mirfanaieng/resume-tailor-ai/internal/keywords"
	"github.com/mirfanaieng/resume-tailor-ai/internal/pipeline"
	"github.com/mirfanaieng/resume-tailor-ai/internal/render"
	"github.com/mirfanaieng/resume-tailor-ai/internal/shared/config"
	"github.com/mirfanaieng/resume-tailor-ai/internal/tailor"
	"github.com/mirfanaieng/resume-tailor-ai/internal/tailor/gemini"
	"github.com/mirfanaieng/resume-tailor-ai/internal/tailor/groq"
)

type keywordList []string

func (k *keywordList) String() string { return strings.Join(*k, ", ") }

func (k *keywordList) Set(value string) error {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		*k = append(*k, trimmed)
	}
	return nil
}

func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path to resume file (pdf, docx, or txt)")
	jdPath := flag.String("jd", "", "Path to job description file")
	outDir := flag.String("o", "output", "Output directory for tailored files")
	var approved keywordList
	flag.Var(&approved, "k", "Approved keyword to include (repeatable)")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" || strings.TrimSpace(*jdPath) == "" {
		exitErr("both -resume and -jd are required")
	}

	ctx := context.Background()

	var ranker keywords.Ranker = keywords.Disabled{}
	if cfg.KeywordFallback {
		ranker = keywords.NewFrequencyRanker()
	}
	runner := pipeline.NewRunner(extract.New(), ranker, cfg.FallbackTopN)

	result, err := runner.Match(ctx, *resumePath, *jdPath)
	if err != nil {
		exitErr(err.Error())
	}

	report, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		exitErr(err.Error())
	}
	fmt.Println(string(report))

	client := tailorClient(ctx, cfg)
	if client == nil {
		fmt.Fprintln(os.Stderr, "no LLM provider configured, skipping tailoring")
		return
	}

	tailorResult, err := client.Tailor(ctx, tailor.Input{
		CandidateName:    result.Resume.Doc.Name,
		CurrentSkills:    result.Resume.Doc.Skills,
		ApprovedKeywords: approved,
	})
	if err != nil {
		exitErr("tailoring failed: " + err.Error())
	}

	if err := writeOutputs(*outDir, result.Resume.Doc.Name, tailorResult); err != nil {
		exitErr(err.Error())
	}
	fmt.Printf("tailored summary and %d skills written to %s\n", len(tailorResult.FinalSkills), *outDir)
}

func tailorClient(ctx context.Context, cfg config.Config) tailor.Client {
	switch cfg.LLMProvider {
	case "groq":
		client, err := groq.NewClient(cfg.GroqAPIKey, cfg.LLMModel)
		if err != nil {
			exitErr(err.Error())
		}
		return client
	case "gemini":
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			exitErr(err.Error())
		}
		return client
	default:
		return nil
	}
}

func writeOutputs(dir, name string, result tailor.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var text strings.Builder
	text.WriteString(name + "\n\n")
	text.WriteString("PROFESSIONAL SUMMARY\n")
	text.WriteString(result.Summary + "\n\n")
	text.WriteString("SKILLS\n")
	text.WriteString(strings.Join(result.FinalSkills, " • ") + "\n")
	if err := os.WriteFile(filepath.Join(dir, "SUMMARY_AND_SKILLS.txt"), []byte(text.String()), 0o644); err != nil {
		return err
	}

	docxBytes, err := render.NewDocxBuilder().Build(render.Input{
		Name:    name,
		Summary: result.Summary,
		Skills:  result.FinalSkills,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "SUMMARY_AND_SKILLS.docx"), docxBytes, 0o644)
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, "error: "+msg)
	os.Exit(1)
}
