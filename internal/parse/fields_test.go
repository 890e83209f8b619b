package parse

import "testing"

func TestExtractEmail(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "plain", text: "Contact: jane.doe@example.com or call", expected: "jane.doe@example.com"},
		{name: "first_in_document_order", text: "a@x.io then b@y.io", expected: "a@x.io"},
		{name: "subdomain", text: "mail me at dev@mail.corp.example.co", expected: "dev@mail.corp.example.co"},
		{name: "none", text: "no contact details here", expected: ""},
		{name: "tld_too_short", text: "weird@host.x", expected: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractEmail(tc.text); got != tc.expected {
				t.Fatalf("ExtractEmail(%q) = %q, want %q", tc.text, got, tc.expected)
			}
		})
	}
}

func TestExtractPhone(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "international", text: "Phone: +92 300 1234567", expected: "+92 300 1234567"},
		{name: "hyphenated", text: "call 0300-1234567 today", expected: "0300-1234567"},
		{name: "parenthesized_area", text: "(0300) 1234567", expected: "(0300) 1234567"},
		{name: "none", text: "no digits worth calling", expected: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractPhone(tc.text); got != tc.expected {
				t.Fatalf("ExtractPhone(%q) = %q, want %q", tc.text, got, tc.expected)
			}
		})
	}
}

func TestExtractName(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		fileName string
		expected string
	}{
		{
			name:     "all_caps_first_line",
			text:     "JOHN A. SMITH\nEmail: john@x.com",
			expected: "JOHN A. SMITH",
		},
		{
			name:     "document_type_line_skipped",
			text:     "Curriculum Vitae\nJane Doe\nSkills:",
			expected: "Jane Doe",
		},
		{
			name:     "job_title_line_skipped",
			text:     "Senior Software Engineer\nMaria Garcia Lopez\n",
			expected: "Maria Garcia Lopez",
		},
		{
			name:     "digit_run_line_skipped",
			text:     "ID 123456\nAli Khan\n",
			expected: "Ali Khan",
		},
		{
			name:     "apostrophe_and_hyphen",
			text:     "Anne-Marie O'Neil\nObjective: things",
			expected: "Anne-Marie O'Neil",
		},
		{
			name:     "filename_fallback",
			text:     "1234567\n????\n",
			fileName: "cv_Jane_Doe.pdf",
			expected: "Jane_Doe",
		},
		{
			name:     "filename_trailing_suffix",
			text:     "",
			fileName: "John Smith resume final.docx",
			expected: "John Smith",
		},
		{
			name:     "nothing_found",
			text:     "9999999\n@@@",
			expected: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractName(tc.text, tc.fileName); got != tc.expected {
				t.Fatalf("ExtractName = %q, want %q", got, tc.expected)
			}
		})
	}
}
