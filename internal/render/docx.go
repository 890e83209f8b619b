// Package render produces a minimal ATS-friendly DOCX containing the tailored
// professional summary and skills list.
package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
)

// Input is the content placed into the generated document.
type Input struct {
	Name       string
	TargetRole string
	Summary    string
	Skills     []string
}

// DocxBuilder assembles DOCX files in memory.
type DocxBuilder struct{}

// NewDocxBuilder returns a ready builder.
func NewDocxBuilder() *DocxBuilder {
	return &DocxBuilder{}
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// Build produces the DOCX bytes for the given content.
func (b *DocxBuilder) Build(input Input) ([]byte, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("name is required")
	}

	var paragraphs []paragraph
	paragraphs = append(paragraphs, paragraph{text: strings.TrimSpace(input.Name), bold: true})
	if role := strings.TrimSpace(input.TargetRole); role != "" {
		paragraphs = append(paragraphs, paragraph{text: role})
	}
	paragraphs = append(paragraphs, paragraph{})

	if summary := strings.TrimSpace(input.Summary); summary != "" {
		paragraphs = append(paragraphs, paragraph{text: "PROFESSIONAL SUMMARY", bold: true})
		for _, line := range strings.Split(summary, "\n") {
			paragraphs = append(paragraphs, paragraph{text: strings.TrimSpace(line)})
		}
		paragraphs = append(paragraphs, paragraph{})
	}

	if len(input.Skills) > 0 {
		paragraphs = append(paragraphs, paragraph{text: "SKILLS", bold: true})
		paragraphs = append(paragraphs, paragraph{text: strings.Join(input.Skills, " • ")})
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)

	files := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML(paragraphs)},
	}
	for _, f := range files {
		w, err := writer.Create(f.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(f.content)); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

type paragraph struct {
	text string
	bold bool
}

func documentXML(paragraphs []paragraph) string {
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString("<w:p>")
		if p.text != "" {
			body.WriteString("<w:r>")
			if p.bold {
				body.WriteString("<w:rPr><w:b/></w:rPr>")
			}
			body.WriteString(`<w:t xml:space="preserve">`)
			body.WriteString(escapeXML(p.text))
			body.WriteString("</w:t></w:r>")
		}
		body.WriteString("</w:p>")
	}

	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() +
		`</w:body></w:document>`
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}
