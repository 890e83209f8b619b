package match

import (
	"context"
	"reflect"
	"testing"
)

type stubRanker struct {
	phrases []string
	calls   int
}

func (s *stubRanker) RankKeyphrases(ctx context.Context, text string, maxPhraseWords, topN int) ([]string, error) {
	s.calls++
	return s.phrases, nil
}

func TestMatchBasicOverlap(t *testing.T) {
	m := &Matcher{}
	report := m.Match(context.Background(), Input{
		ResumeSkills: []string{"Python", "SQL", "Docker"},
		JDSkills:     []string{"Python", "AWS", "Docker", "Kubernetes"},
	})

	if expected := []string{"docker", "python"}; !reflect.DeepEqual(report.MatchedSkills, expected) {
		t.Fatalf("matched = %v, want %v", report.MatchedSkills, expected)
	}
	if expected := []string{"aws", "kubernetes"}; !reflect.DeepEqual(report.MissingSkills, expected) {
		t.Fatalf("missing = %v, want %v", report.MissingSkills, expected)
	}
	if report.MatchScore != 50.0 {
		t.Fatalf("score = %v, want 50.0", report.MatchScore)
	}
	if report.TotalRequired != 4 {
		t.Fatalf("totalRequired = %d, want 4", report.TotalRequired)
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	m := &Matcher{}
	report := m.Match(context.Background(), Input{
		ResumeSkills: []string{"Python", "python", "PYTHON"},
		JDSkills:     []string{"python"},
	})

	if expected := []string{"python"}; !reflect.DeepEqual(report.MatchedSkills, expected) {
		t.Fatalf("matched = %v, want %v", report.MatchedSkills, expected)
	}
	if len(report.MissingSkills) != 0 {
		t.Fatalf("missing = %v, want none", report.MissingSkills)
	}
	if report.MatchScore != 100.0 {
		t.Fatalf("score = %v, want 100.0", report.MatchScore)
	}
}

func TestMatchEmptyRequirements(t *testing.T) {
	m := &Matcher{}
	report := m.Match(context.Background(), Input{
		ResumeSkills: []string{"Go", "SQL", "Docker"},
	})

	if report.TotalRequired != 0 || report.MatchScore != 0.0 {
		t.Fatalf("degenerate report = %+v", report)
	}
	if len(report.MatchedSkills) != 0 || len(report.MissingSkills) != 0 {
		t.Fatalf("degenerate report must have empty sets: %+v", report)
	}
	if report.Note == "" {
		t.Fatalf("degenerate report must carry a note")
	}
}

func TestMatchSetLaws(t *testing.T) {
	cases := []struct {
		name   string
		resume []string
		jd     []string
	}{
		{name: "disjoint", resume: []string{"a", "b", "c"}, jd: []string{"x", "y", "z"}},
		{name: "identical", resume: []string{"a", "b", "c"}, jd: []string{"a", "b", "c"}},
		{name: "overlap", resume: []string{"a", "b", "c"}, jd: []string{"b", "c", "d"}},
		{name: "whitespace_noise", resume: []string{" a ", "", "B"}, jd: []string{"b", " A", "c", ""}},
	}

	m := &Matcher{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := m.Match(context.Background(), Input{ResumeSkills: tc.resume, JDSkills: tc.jd})

			if report.MatchScore < 0 || report.MatchScore > 100 {
				t.Fatalf("score out of bounds: %v", report.MatchScore)
			}
			union := make(map[string]bool)
			for _, s := range report.MatchedSkills {
				union[s] = true
			}
			for _, s := range report.MissingSkills {
				if union[s] {
					t.Fatalf("skill %q in both matched and missing", s)
				}
				union[s] = true
			}
			if len(union) != report.TotalRequired {
				t.Fatalf("matched+missing = %d, totalRequired = %d", len(union), report.TotalRequired)
			}
		})
	}
}

func TestMatchScoreRounding(t *testing.T) {
	m := &Matcher{}
	report := m.Match(context.Background(), Input{
		ResumeSkills: []string{"a", "b", "c"},
		JDSkills:     []string{"a", "x", "y", "u", "v", "w"}, // 1 of 6
	})
	if report.MatchScore != 16.7 {
		t.Fatalf("score = %v, want 16.7", report.MatchScore)
	}
}

func TestMatchResumeSideAugmentation(t *testing.T) {
	ranker := &stubRanker{phrases: []string{"docker", "terraform"}}
	m := &Matcher{Ranker: ranker}

	report := m.Match(context.Background(), Input{
		ResumeSkills: []string{"python"}, // below threshold, augmented by union
		JDSkills:     []string{"python", "docker", "aws"},
		ResumeText:   "resume full text mentioning docker and terraform",
	})

	if ranker.calls != 1 {
		t.Fatalf("expected one augmentation call, got %d", ranker.calls)
	}
	// Union, not replace: the original python entry must survive.
	if expected := []string{"docker", "python"}; !reflect.DeepEqual(report.MatchedSkills, expected) {
		t.Fatalf("matched = %v, want %v", report.MatchedSkills, expected)
	}
	if expected := []string{"aws"}; !reflect.DeepEqual(report.MissingSkills, expected) {
		t.Fatalf("missing = %v, want %v", report.MissingSkills, expected)
	}
}

func TestMatchJDSideAugmentationIndependent(t *testing.T) {
	ranker := &stubRanker{phrases: []string{"kubernetes"}}
	m := &Matcher{Ranker: ranker}

	report := m.Match(context.Background(), Input{
		ResumeSkills: []string{"go", "sql", "docker"}, // at threshold, untouched
		JDSkills:     nil,
		JDText:       "jd text naming kubernetes",
	})

	if ranker.calls != 1 {
		t.Fatalf("expected only the JD side to consult the ranker, got %d calls", ranker.calls)
	}
	if report.TotalRequired != 1 {
		t.Fatalf("totalRequired = %d, want 1", report.TotalRequired)
	}
	if expected := []string{"kubernetes"}; !reflect.DeepEqual(report.MissingSkills, expected) {
		t.Fatalf("missing = %v, want %v", report.MissingSkills, expected)
	}
}

func TestMatchNoRankerNoText(t *testing.T) {
	m := &Matcher{}
	report := m.Match(context.Background(), Input{
		ResumeSkills: []string{"go"},
		JDSkills:     []string{"go", "sql"},
	})
	if report.MatchScore != 50.0 {
		t.Fatalf("score = %v, want 50.0", report.MatchScore)
	}
}
