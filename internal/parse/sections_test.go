package parse

import (
	"reflect"
	"testing"
)

func TestSegmentResumeSections(t *testing.T) {
	text := Normalize(`Jane Doe

Summary:
Seasoned backend developer.

Skills:
Go, SQL, Docker

Experience
Acme Corp, 2019-2024
`)

	sections := NewSegmenter(ResumeSectionHeaders).Segment(text)

	if got := sections.Len(); got != 3 {
		t.Fatalf("expected 3 sections, got %d: %v", got, sections.Names())
	}
	if got, _ := sections.Get("summary"); got != "Seasoned backend developer." {
		t.Fatalf("summary span = %q", got)
	}
	if got, _ := sections.Get("skills"); got != "Go, SQL, Docker" {
		t.Fatalf("skills span = %q", got)
	}
	if got, _ := sections.Get("experience"); got != "Acme Corp, 2019-2024" {
		t.Fatalf("experience span = %q", got)
	}
	if expected := []string{"summary", "skills", "experience"}; !reflect.DeepEqual(sections.Names(), expected) {
		t.Fatalf("names = %v, want %v", sections.Names(), expected)
	}
}

func TestSegmentHeaderShapes(t *testing.T) {
	seg := NewSegmenter(ResumeSectionHeaders)

	cases := []struct {
		name   string
		text   string
		header string
		span   string
	}{
		{name: "bare", text: "Skills\nGo", header: "skills", span: "Go"},
		{name: "colon", text: "Skills:\nGo", header: "skills", span: "Go"},
		{name: "dash", text: "SKILLS -\nGo", header: "skills", span: "Go"},
		{name: "uppercase", text: "EXPERIENCE\nAcme", header: "experience", span: "Acme"},
		{name: "two_word_header", text: "Technical Skills:\nGo", header: "technical skills", span: "Go"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sections := seg.Segment(tc.text)
			got, ok := sections.Get(tc.header)
			if !ok {
				t.Fatalf("header %q not found in %q", tc.header, tc.text)
			}
			if got != tc.span {
				t.Fatalf("span = %q, want %q", got, tc.span)
			}
		})
	}
}

func TestSegmentIgnoresInlineMentions(t *testing.T) {
	text := "Jane has strong skills in Go.\n\nSkills:\nGo, SQL"
	sections := NewSegmenter(ResumeSectionHeaders).Segment(text)
	if sections.Len() != 1 {
		t.Fatalf("expected only the header line to match, got %v", sections.Names())
	}
	if got, _ := sections.Get("skills"); got != "Go, SQL" {
		t.Fatalf("skills span = %q", got)
	}
}

func TestSegmentDuplicateHeaderLastWriteWins(t *testing.T) {
	text := "Skills:\nGo\n\nSkills:\nRust, SQL"
	sections := NewSegmenter(ResumeSectionHeaders).Segment(text)
	if got, _ := sections.Get("skills"); got != "Rust, SQL" {
		t.Fatalf("expected later occurrence to win, got %q", got)
	}
	if sections.Len() != 1 {
		t.Fatalf("duplicate header should collapse to one entry, got %d", sections.Len())
	}
}

func TestSegmentEmptyTrailingHeader(t *testing.T) {
	text := "Experience:\nAcme Corp\n\nCertifications:"
	sections := NewSegmenter(ResumeSectionHeaders).Segment(text)
	got, ok := sections.Get("certifications")
	if !ok {
		t.Fatalf("certifications header not found")
	}
	if got != "" {
		t.Fatalf("expected empty span, got %q", got)
	}
}

func TestSegmentAbsentHeadersAbsentFromMap(t *testing.T) {
	sections := NewSegmenter(ResumeSectionHeaders).Segment("Skills:\nGo, SQL")
	if _, ok := sections.Get("education"); ok {
		t.Fatalf("education should be absent, not an empty placeholder")
	}
}

func TestSegmentSpansPartitionDocument(t *testing.T) {
	// With only recognized headers in order, the header lines plus their
	// spans cover the document with no overlap.
	text := Normalize("Summary:\nshort intro\n\nSkills:\nGo, SQL\n\nEducation:\nBSc")
	sections := NewSegmenter(ResumeSectionHeaders).Segment(text)

	expected := map[string]string{
		"summary":   "short intro",
		"skills":    "Go, SQL",
		"education": "BSc",
	}
	for header, span := range expected {
		got, ok := sections.Get(header)
		if !ok || got != span {
			t.Fatalf("header %q: got %q (found=%v), want %q", header, got, ok, span)
		}
	}
}
